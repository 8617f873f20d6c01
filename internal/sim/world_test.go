package sim

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/zombie-dash/internal/config"
)

type failingLevels struct{ err error }

func (f failingLevels) Level(int) ([]Placement, error) { return nil, f.err }

func TestInitClassifiesLevels(t *testing.T) {
	tests := []struct {
		name     string
		levels   LevelSource
		level    int
		expected Status
	}{
		{"loaded", levelMap{1: {at(KindPlayer, 1, 1)}}, 1, StatusContinue},
		{"not found", levelMap{}, 1, StatusPlayerWon},
		{"wrapped not found", failingLevels{fmt.Errorf("open level09.txt: %w", ErrLevelNotFound)}, 9, StatusPlayerWon},
		{"malformed", failingLevels{fmt.Errorf("row 3: %w", ErrLevelMalformed)}, 1, StatusLevelError},
		{"other error", failingLevels{errors.New("disk on fire")}, 1, StatusLevelError},
		{"no player", levelMap{1: {at(KindWall, 0, 0)}}, 1, StatusLevelError},
		{"two players", levelMap{1: {at(KindPlayer, 1, 1), at(KindPlayer, 2, 2)}}, 1, StatusLevelError},
		{"projectile placement", levelMap{1: {at(KindPlayer, 1, 1), at(KindFlame, 2, 2)}}, 1, StatusLevelError},
		{"final level", levelMap{100: {at(KindPlayer, 1, 1)}}, 100, StatusPlayerWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(Options{Rules: config.DefaultConfig(), Levels: tc.levels, Level: tc.level})
			if got := w.Init(); got != tc.expected {
				t.Errorf("Init() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerIsFirstInPopulation(t *testing.T) {
	h := newHarness(t, at(KindWall, 0, 0), at(KindCitizen, 5, 5), at(KindPlayer, 2, 2))

	if h.world.actors[0] != Actor(h.world.Player()) {
		t.Errorf("actors[0] = %s, expected the player", h.world.actors[0].Kind())
	}
	if h.world.CitizensLeft() != 1 {
		t.Errorf("CitizensLeft() = %d, expected 1", h.world.CitizensLeft())
	}
}

func TestDeadActorsAreFrozenAndSwept(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindDumbZombie, 8, 8))
	z := h.first(t, KindDumbZombie).(*Zombie)

	z.SetDead()
	z.SetDead()
	pos, dir, age := z.pos, z.dir, z.timeAlive

	for i := 0; i < 10; i++ {
		if st := h.world.Tick(); st != StatusContinue {
			t.Fatalf("Tick() = %v", st)
		}
	}
	if z.pos != pos || z.dir != dir || z.timeAlive != age {
		t.Error("dead zombie changed state")
	}
	for _, a := range h.world.actors {
		if a == Actor(z) {
			t.Error("dead zombie was not swept")
		}
	}
}

func TestSpawnedActorsActInSameTick(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 2, 2), at(KindDumbZombie, 4, 2))
	h.world.Player().flames = 1
	h.input.push(CommandFire)

	h.world.Tick()

	flames := h.live(KindFlame)
	if len(flames) != 3 {
		t.Fatalf("got %d flames, expected 3", len(flames))
	}
	for _, f := range flames {
		if age := f.(*Projectile).age; age != 1 {
			t.Errorf("flame age after spawn tick = %d, expected 1", age)
		}
	}
	if len(h.live(KindDumbZombie)) != 0 {
		t.Error("zombie in the flame line should burn in the tick the flames appear")
	}
	if h.world.Ledger().Score() != 1000 {
		t.Errorf("Score() = %d, expected 1000", h.world.Ledger().Score())
	}
}

func TestTickStopsWhenPlayerDies(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 2, 2), at(KindDumbZombie, 8, 8))
	p := h.world.Player()
	p.infected = true
	p.infection = 500
	z := h.first(t, KindDumbZombie).(*Zombie)

	if st := h.world.Tick(); st != StatusPlayerDied {
		t.Fatalf("Tick() = %v, expected player died", st)
	}
	if z.timeAlive != 0 {
		t.Error("actors after the player should not act once it died")
	}
	if h.world.Ledger().Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", h.world.Ledger().Lives())
	}
	if h.audio.count(SoundPlayerDie) != 1 {
		t.Error("expected one player death sound")
	}
}

func TestLevelFinishesOnlyAfterCitizensGone(t *testing.T) {
	h := newHarness(t,
		at(KindPlayer, 1, 1),
		at(KindExit, 1, 1),
		at(KindCitizen, 10, 10),
		at(KindPit, 10, 10),
	)

	if st := h.world.Tick(); st != StatusContinue {
		t.Fatalf("first Tick() = %v, expected continue while a citizen remains", st)
	}
	if h.world.CitizensLeft() != 0 {
		t.Fatalf("CitizensLeft() = %d, expected 0 after the pit", h.world.CitizensLeft())
	}
	if st := h.world.Tick(); st != StatusFinishedLevel {
		t.Fatalf("second Tick() = %v, expected finished level", st)
	}
	if h.world.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", h.world.Level())
	}
	if h.audio.count(SoundLevelFinished) != 1 {
		t.Errorf("level finished sound played %d times, expected 1", h.audio.count(SoundLevelFinished))
	}
	if h.world.Init() != StatusPlayerWon {
		t.Error("loading the missing level 2 should win")
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, "Score: 000000  Level: 1  Lives: 3  Vacc: 0  Flames: 0  Mines: 0  Infected: 0"},
		{1550, "Score: 001550  Level: 1  Lives: 3  Vacc: 0  Flames: 0  Mines: 0  Infected: 0"},
		{-1000, "Score: -01000  Level: 1  Lives: 3  Vacc: 0  Flames: 0  Mines: 0  Infected: 0"},
	}

	for _, tc := range tests {
		h := newHarness(t, at(KindPlayer, 1, 1))
		h.world.Ledger().IncreaseScore(tc.score)
		h.world.Tick()
		if got := h.world.StatusText(); got != tc.expected {
			t.Errorf("StatusText() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestDeterminism(t *testing.T) {
	level := []Placement{
		at(KindPlayer, 2, 2),
		at(KindCitizen, 4, 4), at(KindCitizen, 9, 3),
		at(KindDumbZombie, 8, 8), at(KindSmartZombie, 12, 5), at(KindDumbZombie, 5, 11),
		at(KindExit, 14, 14), at(KindPit, 7, 7),
	}
	for col := 0; col < 16; col++ {
		level = append(level, at(KindWall, col, 0), at(KindWall, col, 15))
	}

	h1 := newHarnessSeed(t, 12345, level...)
	h2 := newHarnessSeed(t, 12345, level...)
	for i := 0; i < 300; i++ {
		s1, s2 := h1.world.Tick(), h2.world.Tick()
		if s1 != s2 {
			t.Fatalf("tick %d: status %v vs %v", i, s1, s2)
		}
		if s1 != StatusContinue {
			break
		}
	}

	if !reflect.DeepEqual(h1.world.Views(), h2.world.Views()) {
		t.Error("same seed produced different populations")
	}
	if h1.world.StatusText() != h2.world.StatusText() {
		t.Errorf("status mismatch: %q vs %q", h1.world.StatusText(), h2.world.StatusText())
	}
}
