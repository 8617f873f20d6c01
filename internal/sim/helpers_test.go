package sim

import (
	"testing"

	"github.com/vovakirdan/zombie-dash/internal/config"
	"github.com/vovakirdan/zombie-dash/internal/core"
)

// levelMap is an in-memory LevelSource.
type levelMap map[int][]Placement

func (m levelMap) Level(n int) ([]Placement, error) {
	p, ok := m[n]
	if !ok {
		return nil, ErrLevelNotFound
	}
	return p, nil
}

// script feeds queued commands, one per tick.
type script struct {
	cmds []Command
}

func (s *script) push(cmds ...Command) { s.cmds = append(s.cmds, cmds...) }

func (s *script) NextCommand() (Command, bool) {
	if len(s.cmds) == 0 {
		return 0, false
	}
	c := s.cmds[0]
	s.cmds = s.cmds[1:]
	return c, true
}

// recorder remembers every sound request.
type recorder struct {
	sounds []Sound
}

func (r *recorder) PlaySound(s Sound) { r.sounds = append(r.sounds, s) }

func (r *recorder) count(s Sound) int {
	n := 0
	for _, got := range r.sounds {
		if got == s {
			n++
		}
	}
	return n
}

type harness struct {
	world  *World
	input  *script
	audio  *recorder
	spawns []Event
}

func at(k Kind, col, row int) Placement {
	return Placement{Kind: k, Col: col, Row: row}
}

// newHarness loads a single level built from placements with default rules.
func newHarness(t *testing.T, placements ...Placement) *harness {
	t.Helper()
	return newHarnessSeed(t, 1, placements...)
}

func newHarnessSeed(t *testing.T, seed int64, placements ...Placement) *harness {
	t.Helper()
	h := &harness{input: &script{}, audio: &recorder{}}
	h.world = NewWorld(Options{
		Rules:  config.DefaultConfig(),
		Levels: levelMap{1: placements},
		Input:  h.input,
		Audio:  h.audio,
		Seed:   seed,
		Observer: ObserverFunc(func(e Event) {
			if e.Type == EventSpawn {
				h.spawns = append(h.spawns, e)
			}
		}),
	})
	if st := h.world.Init(); st != StatusContinue {
		t.Fatalf("Init() = %v, expected continue", st)
	}
	h.spawns = nil
	return h
}

// live returns the live actors of kind k in population order.
func (h *harness) live(k Kind) []Actor {
	var out []Actor
	for _, a := range h.world.actors {
		if a.Alive() && a.Kind() == k {
			out = append(out, a)
		}
	}
	return out
}

func (h *harness) first(t *testing.T, k Kind) Actor {
	t.Helper()
	got := h.live(k)
	if len(got) == 0 {
		t.Fatalf("no live %s", k)
	}
	return got[0]
}

func (h *harness) spawnedKinds() map[Kind]int {
	out := make(map[Kind]int)
	for _, e := range h.spawns {
		out[e.Kind]++
	}
	return out
}

func cell(col, row int) core.Vec {
	return core.CellVec(col, row)
}
