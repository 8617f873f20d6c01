package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// effect is what an instigator does to whatever touches it.
type effect int

const (
	effectNone effect = iota
	effectPickUp
	effectBurn
	effectInfect
	effectUseExit
	effectDetonate
)

// instigatorEffects maps instigator kinds to their effect. Kinds that never
// instigate map to effectNone.
var instigatorEffects = [kindCount]effect{
	KindVaccineGoodie:  effectPickUp,
	KindGasCanGoodie:   effectPickUp,
	KindLandmineGoodie: effectPickUp,
	KindFlame:          effectBurn,
	KindPit:            effectBurn,
	KindVomit:          effectInfect,
	KindExit:           effectUseExit,
	KindLandmine:       effectDetonate,
}

// activateTouching applies src's effect to every other live actor touching
// it. It stops as soon as src itself dies.
func (w *World) activateTouching(src Actor) {
	eff := instigatorEffects[src.Kind()]
	if eff == effectNone {
		return
	}
	radius := w.rules.Game.ActivationRadius

	for i := 0; i < len(w.actors); i++ {
		dst := w.actors[i]
		if dst == src || !dst.Alive() {
			continue
		}
		if !core.Touching(src.Pos(), dst.Pos(), radius) {
			continue
		}
		w.apply(eff, src, dst)
		if !src.Alive() {
			return
		}
	}
}

func (w *World) apply(eff effect, src, dst Actor) {
	switch eff {
	case effectPickUp:
		pickUp(src.(*Goodie), dst)
	case effectBurn:
		burn(dst)
	case effectInfect:
		infect(dst)
	case effectUseExit:
		useExit(dst)
	case effectDetonate:
		detonate(src.(*Landmine), dst)
	}
}

func pickUp(g *Goodie, dst Actor) {
	p, ok := dst.(*Player)
	if !ok {
		return
	}
	p.pickUp(g)
	if !g.Alive() {
		g.world.playSound(SoundGotGoodie)
	}
}

// burn covers both burning and falling into a pit.
func burn(dst Actor) {
	switch t := dst.(type) {
	case *Player:
		t.die()
	case *Citizen:
		t.burn()
	case *Zombie:
		t.burn()
	case *Goodie:
		t.SetDead()
	case *Landmine:
		t.explode()
	}
}

func infect(dst Actor) {
	switch t := dst.(type) {
	case *Player:
		t.infect()
	case *Citizen:
		t.infect()
	}
}

func useExit(dst Actor) {
	switch t := dst.(type) {
	case *Player:
		t.useExit()
	case *Citizen:
		t.useExit()
	}
}

func detonate(m *Landmine, dst Actor) {
	if m.armed && dst.Caps().Has(CapTriggersActiveLandmines) {
		m.explode()
	}
}
