package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// Zombie wanders in short straight runs and vomits on humans in front of it.
// Smart zombies aim their runs at the nearest human in range.
type Zombie struct {
	agent
	plan int
}

func newZombie(w *World, kind Kind, pos core.Vec) *Zombie {
	return &Zombie{agent: agent{base: newBase(w, kind, pos, core.DirRight)}}
}

// Smart reports whether the zombie hunts humans.
func (z *Zombie) Smart() bool { return z.kind == KindSmartZombie }

// Plan returns the number of steps left on the current run.
func (z *Zombie) Plan() int { return z.plan }

// Act runs the zombie's turn.
func (z *Zombie) Act() {
	if !z.age() {
		return
	}
	if z.vomit() {
		return
	}

	rules := z.world.rules.Zombie
	if z.plan == 0 {
		z.plan = z.world.randInt(rules.PlanMin, rules.PlanMax)
		z.dir = z.planDirection()
	}
	if z.move(z.dir, rules.Step) {
		z.plan--
	} else {
		z.plan = 0
	}
}

func (z *Zombie) planDirection() core.Direction {
	if z.Smart() {
		human, dist := z.world.nearestVomitTrigger(z.pos)
		if human != nil && dist < z.world.rules.Game.SenseRange {
			d, _, _ := z.directionTo(human.Pos())
			return d
		}
	}
	return z.world.randDirection()
}

// vomit aims one cell ahead of the zombie.
func (z *Zombie) vomit() bool {
	rules := z.world.rules.Zombie
	target := z.pos.Add(z.dir.Delta(core.CellWidth))

	human, dist := z.world.nearestVomitTrigger(target)
	if human == nil || dist >= rules.VomitRange {
		return false
	}
	if z.world.randInt(1, rules.VomitChance) != 1 {
		return false
	}
	z.world.playSound(SoundZombieVomit)
	z.world.add(newProjectile(z.world, KindVomit, target, z.dir))
	return true
}

func (z *Zombie) burn() {
	z.SetDead()
	z.world.playSound(SoundZombieDie)

	rules := z.world.rules.Zombie
	if z.Smart() {
		z.world.ledger.IncreaseScore(rules.SmartScore)
		return
	}
	z.world.ledger.IncreaseScore(rules.DumbScore)
	if z.world.randInt(1, rules.VaccineDropChance) == rules.VaccineDropChance {
		z.flingVaccine(z.world.randDirection())
	}
}

func (z *Zombie) flingVaccine(d core.Direction) {
	pos := z.pos.Add(d.Delta(core.CellWidth))
	if z.world.occupied(pos) {
		return
	}
	z.world.add(newGoodie(z.world, KindVaccineGoodie, pos))
}
