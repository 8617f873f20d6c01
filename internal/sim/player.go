package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// Player is the human the user controls.
type Player struct {
	human
	vaccines int
	flames   int
	mines    int
}

func newPlayer(w *World, pos core.Vec) *Player {
	return &Player{human: human{agent: agent{base: newBase(w, KindPlayer, pos, core.DirRight)}}}
}

// Vaccines returns the number of vaccines carried.
func (p *Player) Vaccines() int { return p.vaccines }

// Flames returns the number of flame charges carried.
func (p *Player) Flames() int { return p.flames }

// Mines returns the number of landmines carried.
func (p *Player) Mines() int { return p.mines }

// Act consumes at most one command per tick.
func (p *Player) Act() {
	if p.progressInfection() > p.world.rules.Player.InfectionLimit {
		p.die()
		return
	}

	cmd, ok := p.world.input.NextCommand()
	if !ok {
		return
	}
	switch cmd {
	case CommandUp, CommandDown, CommandLeft, CommandRight:
		p.walk(cmd.Direction())
	case CommandFire:
		p.throwFlames()
	case CommandMine:
		p.dropMine()
	case CommandVaccine:
		p.useVaccine()
	}
}

// walk faces d even when the step itself is blocked.
func (p *Player) walk(d core.Direction) {
	p.dir = d
	p.move(d, p.world.rules.Player.Step)
}

func (p *Player) throwFlames() {
	if p.flames <= 0 {
		return
	}
	p.flames--
	p.world.playSound(SoundPlayerFire)

	for i := 1; i <= p.world.rules.Player.FlameLength; i++ {
		pos := p.pos.Add(p.dir.Delta(float64(i * core.CellWidth)))
		if p.world.flameBlocked(pos) {
			return
		}
		p.world.add(newProjectile(p.world, KindFlame, pos, p.dir))
	}
}

func (p *Player) dropMine() {
	if p.mines <= 0 {
		return
	}
	p.mines--
	p.world.add(newLandmine(p.world, p.pos))
}

func (p *Player) useVaccine() {
	if p.vaccines <= 0 {
		return
	}
	p.vaccines--
	p.cure()
}

// die costs a life.
func (p *Player) die() {
	p.world.ledger.DecLives()
	p.SetDead()
	p.world.playSound(SoundPlayerDie)
}

func (p *Player) pickUp(g *Goodie) {
	rules := p.world.rules.Goodies
	switch g.kind {
	case KindVaccineGoodie:
		p.vaccines += rules.Vaccines
	case KindGasCanGoodie:
		p.flames += rules.Flames
	case KindLandmineGoodie:
		p.mines += rules.Mines
	}
	g.SetDead()
	p.world.ledger.IncreaseScore(p.world.rules.Player.GoodieScore)
}

func (p *Player) useExit() {
	p.world.recordLevelFinishedIfAllCitizensGone()
}
