package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// Goodie is a collectible granting the player vaccines, flames or mines.
type Goodie struct {
	base
}

func newGoodie(w *World, kind Kind, pos core.Vec) *Goodie {
	return &Goodie{base: newBase(w, kind, pos, core.DirRight)}
}

func (g *Goodie) Act() { g.world.activateTouching(g) }

// Projectile is a short-lived flame or vomit.
type Projectile struct {
	base
	age int
}

func newProjectile(w *World, kind Kind, pos core.Vec, dir core.Direction) *Projectile {
	return &Projectile{base: newBase(w, kind, pos, dir)}
}

// Act expires the projectile once its lifetime is spent, before it gets
// another chance to touch anything.
func (p *Projectile) Act() {
	if p.age == p.world.rules.Projectile.Lifetime {
		p.SetDead()
	}
	if p.Alive() {
		p.world.activateTouching(p)
	}
	p.age++
}

// Landmine is inert for a safety period, then explodes when an agent steps on it.
type Landmine struct {
	base
	safety int
	armed  bool
}

func newLandmine(w *World, pos core.Vec) *Landmine {
	return &Landmine{
		base:   newBase(w, KindLandmine, pos, core.DirRight),
		safety: w.rules.Landmine.SafetyTicks,
	}
}

// Armed reports whether the safety countdown has finished.
func (m *Landmine) Armed() bool { return m.armed }

// Act counts down the safety period; once armed it checks for triggers.
func (m *Landmine) Act() {
	if !m.armed {
		if m.safety > 0 {
			m.safety--
		} else {
			m.armed = true
		}
		return
	}
	m.world.activateTouching(m)
}

// explode replaces the mine with a pit ringed by flames. It can only happen once.
func (m *Landmine) explode() {
	if !m.Alive() {
		return
	}
	m.world.playSound(SoundLandmineExplode)
	m.SetDead()

	m.world.add(newFixture(m.world, KindPit, m.pos))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offset := core.Vec{X: float64(dx * core.CellWidth), Y: float64(dy * core.CellHeight)}
			m.world.add(newProjectile(m.world, KindFlame, m.pos.Add(offset), core.DirUp))
		}
	}
}

// Fixture is a pit, exit or wall. Walls never do anything; pits and exits
// act on whatever touches them.
type Fixture struct {
	base
}

func newFixture(w *World, kind Kind, pos core.Vec) *Fixture {
	return &Fixture{base: newBase(w, kind, pos, core.DirRight)}
}

func (f *Fixture) Act() {
	if f.kind == KindWall {
		return
	}
	f.world.activateTouching(f)
}
