package sim

import (
	"math"

	"github.com/vovakirdan/zombie-dash/internal/core"
)

// Spatial queries. Dead actors are invisible to all of them.

// movementBlocked reports whether an actor other than self that blocks
// movement overlaps pos.
func (w *World) movementBlocked(pos core.Vec, self ID) bool {
	for _, a := range w.actors {
		if a.ID() == self || !a.Alive() || !a.Caps().Has(CapBlocksMovement) {
			continue
		}
		if core.Overlaps(pos, a.Pos()) {
			return true
		}
	}
	return false
}

// flameBlocked reports whether a flame spawned at pos would overlap
// anything that stops flames.
func (w *World) flameBlocked(pos core.Vec) bool {
	for _, a := range w.actors {
		if a.Alive() && a.Caps().Has(CapBlocksFlame) && core.Overlaps(pos, a.Pos()) {
			return true
		}
	}
	return false
}

// occupied reports whether any actor overlaps pos.
func (w *World) occupied(pos core.Vec) bool {
	for _, a := range w.actors {
		if a.Alive() && core.Overlaps(pos, a.Pos()) {
			return true
		}
	}
	return false
}

// nearest finds the live actor with every flag in want whose centre is
// closest to a sprite at from. Ties go to the earlier actor.
func (w *World) nearest(from core.Vec, want Caps) (Actor, float64) {
	var best Actor
	bestDist := math.Inf(1)
	for _, a := range w.actors {
		if !a.Alive() || !a.Caps().Has(want) {
			continue
		}
		if d := core.CenterDistance(from, a.Pos()); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best, bestDist
}

func (w *World) nearestVomitTrigger(from core.Vec) (Actor, float64) {
	return w.nearest(from, CapTriggersVomit)
}

// nearestCitizenTrigger also reports whether the trigger found is the player.
func (w *World) nearestCitizenTrigger(from core.Vec) (Actor, float64, bool) {
	a, d := w.nearest(from, CapTriggersCitizens)
	if a == nil {
		return nil, d, false
	}
	return a, d, w.player != nil && a.ID() == w.player.ID()
}

func (w *World) nearestCitizenThreat(from core.Vec) (Actor, float64) {
	return w.nearest(from, CapThreatensCitizens)
}
