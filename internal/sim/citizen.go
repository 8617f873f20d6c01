package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// Citizen follows the player and flees zombies until it reaches an exit,
// dies, or turns.
type Citizen struct {
	human
}

func newCitizen(w *World, pos core.Vec) *Citizen {
	return &Citizen{human: human{agent: agent{base: newBase(w, KindCitizen, pos, core.DirRight)}}}
}

// Act runs the citizen's turn. Infection progresses every tick; movement
// only on active ticks.
func (c *Citizen) Act() {
	active := c.age()

	if c.progressInfection() == 1 {
		c.world.playSound(SoundCitizenInfected)
	}
	if c.infection > c.world.rules.Citizen.InfectionLimit {
		c.turn()
		return
	}
	if !active {
		return
	}

	sense := c.world.rules.Game.SenseRange
	trigger, dist, isPlayer := c.world.nearestCitizenTrigger(c.pos)
	if trigger == nil {
		return
	}

	threat, threatDist := trigger, dist
	if isPlayer {
		if dist < sense && c.follow(trigger.Pos()) {
			return
		}
		threat, threatDist = c.world.nearestCitizenThreat(c.pos)
		if threat == nil {
			return
		}
	}
	if threatDist < sense {
		c.flee(threat.Pos())
	}
}

// follow steps toward target, trying the fallback direction when the
// primary one is blocked.
func (c *Citizen) follow(target core.Vec) bool {
	step := c.world.rules.Citizen.Step
	primary, fallback, ok := c.directionTo(target)
	if c.move(primary, step) {
		return true
	}
	return ok && c.move(fallback, step)
}

// flee probes every direction and takes the one that leaves the nearest
// threat furthest away. Ties keep the first direction probed; if nothing
// improves on standing still the citizen stays put.
func (c *Citizen) flee(threat core.Vec) {
	step := c.world.rules.Citizen.Step
	current := core.CenterDistance(c.pos, threat)
	best := current
	var chosen core.Direction

	for _, d := range core.Directions {
		next := c.pos.Add(d.Delta(step))
		if c.world.movementBlocked(next, c.id) {
			continue
		}
		_, dist := c.world.nearestCitizenThreat(next)
		if dist > best {
			best = dist
			chosen = d
		}
	}
	if best == current {
		return
	}
	c.move(chosen, step)
}

// kill removes the citizen from the level's headcount at a score penalty.
func (c *Citizen) kill() {
	c.SetDead()
	c.world.recordCitizenGone()
	c.world.ledger.IncreaseScore(c.world.rules.Citizen.LostScore)
}

// turn replaces the citizen with a zombie on the same spot.
func (c *Citizen) turn() {
	c.kill()
	c.world.playSound(SoundZombieBorn)

	kind := KindDumbZombie
	if c.world.randInt(1, 10) > 10-c.world.rules.Zombie.SmartShare {
		kind = KindSmartZombie
	}
	c.world.log.Debug("citizen turned", "id", c.id, "into", kind)
	c.world.add(newZombie(c.world, kind, c.pos))
}

func (c *Citizen) burn() {
	c.kill()
	c.world.playSound(SoundCitizenDie)
}

func (c *Citizen) useExit() {
	c.SetDead()
	c.world.ledger.IncreaseScore(c.world.rules.Citizen.SavedScore)
	c.world.recordCitizenGone()
	c.world.playSound(SoundCitizenSaved)
}
