package sim

import (
	"testing"

	"github.com/vovakirdan/zombie-dash/internal/core"
)

func TestZombieActsEveryOtherTick(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindDumbZombie, 8, 8))
	z := h.first(t, KindDumbZombie).(*Zombie)

	h.world.Tick()
	after1 := z.Pos()
	if after1 == cell(8, 8) {
		t.Fatal("zombie should take a step on its first tick")
	}
	if z.Plan() < 2 || z.Plan() > 9 {
		t.Errorf("Plan() = %d, expected within [2,9] after one step", z.Plan())
	}

	h.world.Tick()
	if z.Pos() != after1 {
		t.Error("zombie moved on an even tick")
	}
}

func TestZombiePlanResetsWhenBlocked(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 14), at(KindDumbZombie, 5, 5), at(KindWall, 6, 5))
	z := h.first(t, KindDumbZombie).(*Zombie)
	z.plan = 5
	z.dir = core.DirRight

	h.world.Tick()

	if z.Pos() != cell(5, 5) {
		t.Errorf("zombie walked into a wall to %v", z.Pos())
	}
	if z.Plan() != 0 {
		t.Errorf("Plan() = %d, expected 0 after a blocked step", z.Plan())
	}
	if z.Dir() != core.DirRight {
		t.Errorf("Dir() = %v, expected unchanged right", z.Dir())
	}
}

func TestSmartZombieChasesHuman(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 5, 8), at(KindSmartZombie, 5, 5))
	z := h.first(t, KindSmartZombie).(*Zombie)

	h.world.Tick()

	if z.Dir() != core.DirUp {
		t.Errorf("Dir() = %v, expected up toward the player", z.Dir())
	}
	if want := cell(5, 5).Add(core.Vec{Y: 1}); z.Pos() != want {
		t.Errorf("Pos() = %v, expected %v", z.Pos(), want)
	}
}

func TestZombieVomitChance(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 6, 5), at(KindDumbZombie, 5, 5))
	z := h.first(t, KindDumbZombie).(*Zombie)
	z.dir = core.DirRight

	const trials = 3000
	hits := 0
	for i := 0; i < trials; i++ {
		if z.vomit() {
			hits++
		}
	}

	if hits < 900 || hits > 1100 {
		t.Errorf("vomited %d times in %d tries, expected about a third", hits, trials)
	}
	if got := h.spawnedKinds()[KindVomit]; got != hits {
		t.Errorf("spawned %d vomit, expected %d", got, hits)
	}
	if h.spawns[0].Pos != cell(6, 5) {
		t.Errorf("vomit at %v, expected one cell ahead", h.spawns[0].Pos)
	}
	if h.audio.count(SoundZombieVomit) != hits {
		t.Error("every vomit should request a sound")
	}
}

func TestZombieDoesNotVomitOutOfRange(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 7, 5), at(KindDumbZombie, 5, 5))
	z := h.first(t, KindDumbZombie).(*Zombie)
	z.dir = core.DirRight

	for i := 0; i < 100; i++ {
		if z.vomit() {
			t.Fatal("zombie vomited at a human two cells away")
		}
	}
}

func TestVomitInfects(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 3, 3))
	h.world.add(newProjectile(h.world, KindVomit, cell(3, 3), core.DirLeft))

	h.world.Tick()

	if !h.world.Player().Infected() {
		t.Error("player touched by vomit should be infected")
	}
}

func TestZombieDeathScores(t *testing.T) {
	tests := []struct {
		kind  Kind
		score int
	}{
		{KindDumbZombie, 1000},
		{KindSmartZombie, 2000},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			h := newHarness(t, at(KindPlayer, 1, 1), at(tc.kind, 8, 8))
			z := h.first(t, tc.kind).(*Zombie)

			burn(z)

			if z.Alive() {
				t.Error("burned zombie should be dead")
			}
			if h.world.Ledger().Score() != tc.score {
				t.Errorf("Score() = %d, expected %d", h.world.Ledger().Score(), tc.score)
			}
			if h.audio.count(SoundZombieDie) != 1 {
				t.Error("expected one zombie death sound")
			}
		})
	}
}

func TestFlingVaccine(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindDumbZombie, 8, 8), at(KindWall, 8, 9))
	z := h.first(t, KindDumbZombie).(*Zombie)

	z.flingVaccine(core.DirUp)
	if got := h.spawnedKinds()[KindVaccineGoodie]; got != 0 {
		t.Errorf("vaccine flung onto an occupied cell")
	}

	z.flingVaccine(core.DirLeft)
	if got := h.spawnedKinds()[KindVaccineGoodie]; got != 1 {
		t.Fatalf("spawned %d vaccines, expected 1", got)
	}
	if h.spawns[0].Pos != cell(7, 8) {
		t.Errorf("vaccine at %v, expected one cell left", h.spawns[0].Pos)
	}
}

func TestSmartZombieNeverFlingsVaccine(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		h := newHarnessSeed(t, seed, at(KindPlayer, 1, 1), at(KindSmartZombie, 8, 8))
		burn(h.first(t, KindSmartZombie))
		if len(h.spawns) != 0 {
			t.Fatalf("seed %d: smart zombie spawned %v", seed, h.spawnedKinds())
		}
	}
}
