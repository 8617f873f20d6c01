package game

import "github.com/vovakirdan/zombie-dash/internal/sim"

// Snapshot captures the run state for determinism testing and tracing.
type Snapshot struct {
	Tick     uint64
	Level    int
	Score    int
	Lives    int
	Citizens int
	Actors   int
	PlayerX  float64
	PlayerY  float64
	Outcome  Outcome
	Kinds    map[sim.Kind]int
}

// Snapshot returns the current run snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Outcome: g.outcome,
		Kinds:   make(map[sim.Kind]int),
	}
	if g.world == nil {
		return s
	}

	s.Level = g.world.Level()
	s.Score = g.tally.Score()
	s.Lives = g.tally.Lives()
	s.Citizens = g.world.CitizensLeft()
	for _, v := range g.world.Views() {
		s.Actors++
		s.Kinds[v.Kind]++
	}
	if p := g.world.Player(); p != nil && p.Alive() {
		s.PlayerX, s.PlayerY = p.Pos().X, p.Pos().Y
	}
	return s
}
