package sim

import "github.com/vovakirdan/zombie-dash/internal/core"

// agent is an actor that moves on its own.
type agent struct {
	base
	timeAlive int
}

// age advances the time-alive counter and reports whether this is an
// active tick. Citizens and zombies act on odd counts only.
func (a *agent) age() bool {
	a.timeAlive++
	return a.timeAlive%2 != 0
}

// TimeAlive returns the number of turns the agent has had.
func (a *agent) TimeAlive() int { return a.timeAlive }

// move tries to step dist units in direction d. Position and direction are
// committed together, and only when the destination is free.
func (a *agent) move(d core.Direction, dist float64) bool {
	next := a.pos.Add(d.Delta(dist))
	if a.world.movementBlocked(next, a.id) {
		return false
	}
	a.pos = next
	a.dir = d
	return true
}

// directionTo picks a direction toward target. When target shares a column
// or row with the agent there is only one sensible direction and ok is false;
// otherwise primary is chosen at random between the two axes and fallback is
// the other one.
func (a *agent) directionTo(target core.Vec) (primary, fallback core.Direction, ok bool) {
	vertical := core.DirUp
	if target.Y < a.pos.Y {
		vertical = core.DirDown
	}
	horizontal := core.DirRight
	if target.X < a.pos.X {
		horizontal = core.DirLeft
	}

	switch {
	case target.X == a.pos.X:
		return vertical, vertical, false
	case target.Y == a.pos.Y:
		return horizontal, horizontal, false
	}
	if a.world.randInt(0, 1) == 0 {
		return vertical, horizontal, true
	}
	return horizontal, vertical, true
}

// human is an agent that can be infected.
type human struct {
	agent
	infected  bool
	infection int
}

// Infected reports whether the human carries the infection.
func (h *human) Infected() bool { return h.infected }

// InfectionCount returns the number of turns spent infected.
func (h *human) InfectionCount() int { return h.infection }

func (h *human) infect() {
	h.infected = true
}

// cure clears the flag and the counter in one step.
func (h *human) cure() {
	h.infected = false
	h.infection = 0
}

// progressInfection advances the counter while infected and returns it.
func (h *human) progressInfection() int {
	if h.infected {
		h.infection++
	}
	return h.infection
}
