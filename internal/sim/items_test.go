package sim

import (
	"testing"

	"github.com/vovakirdan/zombie-dash/internal/core"
)

func TestLandmineArmsAfterSafetyPeriod(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 5, 5), at(KindLandmine, 5, 5))
	m := h.first(t, KindLandmine).(*Landmine)

	for i := 1; i <= 31; i++ {
		if st := h.world.Tick(); st != StatusContinue {
			t.Fatalf("tick %d: %v while the mine is still safe", i, st)
		}
		if !m.Alive() {
			t.Fatalf("tick %d: mine exploded during its safety period", i)
		}
	}
	if !m.Armed() {
		t.Fatal("mine should be armed after its countdown")
	}

	if st := h.world.Tick(); st != StatusPlayerDied {
		t.Fatalf("Tick() = %v, expected the pit to take the player", st)
	}
	if m.Alive() {
		t.Error("mine should be dead after exploding")
	}
	kinds := h.spawnedKinds()
	if kinds[KindPit] != 1 || kinds[KindFlame] != 8 || len(h.spawns) != 9 {
		t.Errorf("explosion spawned %v, expected 1 pit and 8 flames", kinds)
	}
	if h.audio.count(SoundLandmineExplode) != 1 {
		t.Error("expected exactly one explosion sound")
	}
}

func TestExplosionLayout(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindLandmine, 8, 8))
	m := h.first(t, KindLandmine).(*Landmine)

	m.explode()
	m.explode()

	if len(h.spawns) != 9 {
		t.Fatalf("spawned %d actors, expected 9", len(h.spawns))
	}
	seen := make(map[core.Vec]Kind)
	for _, e := range h.spawns {
		seen[e.Pos] = e.Kind
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			want := KindFlame
			if dx == 0 && dy == 0 {
				want = KindPit
			}
			if got, ok := seen[cell(8+dx, 8+dy)]; !ok || got != want {
				t.Errorf("cell (%d,%d) = %v, expected %v", 8+dx, 8+dy, got, want)
			}
		}
	}
	if h.audio.count(SoundLandmineExplode) != 1 {
		t.Error("a second explode call must not explode again")
	}
}

func TestArmedLandmineIgnoresNonTriggers(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindLandmine, 8, 8), at(KindWall, 8, 8))
	m := h.first(t, KindLandmine).(*Landmine)
	m.armed = true
	h.world.add(newGoodie(h.world, KindGasCanGoodie, cell(8, 8)))

	h.world.Tick()

	if !m.Alive() {
		t.Error("walls and goodies should not set off a landmine")
	}
}

func TestFlameDetonatesLandmine(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindLandmine, 8, 8))
	m := h.first(t, KindLandmine).(*Landmine)
	h.world.add(newProjectile(h.world, KindFlame, cell(8, 8), core.DirUp))
	h.spawns = nil

	h.world.Tick()

	if m.Alive() {
		t.Fatal("a flame should set off even an unarmed mine")
	}
	if len(h.spawns) != 9 {
		t.Errorf("spawned %d actors, expected 9", len(h.spawns))
	}
}

func TestProjectileLifetime(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1))
	f := newProjectile(h.world, KindFlame, cell(8, 8), core.DirUp)
	h.world.add(f)

	for i := 1; i <= 3; i++ {
		h.world.Tick()
		if !f.Alive() {
			t.Fatalf("flame died on tick %d, expected it to last three", i)
		}
	}
	h.world.Tick()
	if f.Alive() {
		t.Error("flame should expire on its fourth tick")
	}
	if len(h.live(KindFlame)) != 0 {
		t.Error("expired flame should be swept")
	}
}

func TestExpiredProjectileDoesNotActivate(t *testing.T) {
	h := newHarness(t, at(KindPlayer, 1, 1), at(KindCitizen, 10, 10))
	c := h.first(t, KindCitizen).(*Citizen)
	f := newProjectile(h.world, KindFlame, cell(10, 10), core.DirUp)
	f.age = 3
	h.world.add(f)

	h.world.Tick()

	if !c.Alive() {
		t.Error("a flame at the end of its life should expire before burning")
	}
}

func TestPitAndFlameKillGoodies(t *testing.T) {
	for _, instigator := range []Kind{KindPit, KindFlame} {
		t.Run(instigator.String(), func(t *testing.T) {
			h := newHarness(t, at(KindPlayer, 1, 1), at(KindVaccineGoodie, 8, 8))
			g := h.first(t, KindVaccineGoodie)
			if instigator == KindPit {
				h.world.add(newFixture(h.world, KindPit, cell(8, 8)))
			} else {
				h.world.add(newProjectile(h.world, KindFlame, cell(8, 8), core.DirUp))
			}

			h.world.Tick()

			if g.Alive() {
				t.Error("goodie should be destroyed")
			}
			if h.audio.count(SoundGotGoodie) != 0 {
				t.Error("destroyed goodie should not play the pickup sound")
			}
		})
	}
}

func TestCapabilityDefaults(t *testing.T) {
	tests := []struct {
		kind Kind
		caps Caps
	}{
		{KindPlayer, CapBlocksMovement | CapTriggersActiveLandmines | CapTriggersVomit | CapTriggersCitizens},
		{KindCitizen, CapBlocksMovement | CapTriggersActiveLandmines | CapTriggersVomit},
		{KindDumbZombie, CapBlocksMovement | CapTriggersActiveLandmines | CapThreatensCitizens | CapTriggersCitizens},
		{KindWall, CapBlocksMovement | CapBlocksFlame},
		{KindExit, CapBlocksFlame},
		{KindPit, 0},
		{KindFlame, 0},
		{KindLandmine, 0},
		{KindGasCanGoodie, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := CapsOf(tc.kind); got != tc.caps {
				t.Errorf("CapsOf(%s) = %08b, expected %08b", tc.kind, got, tc.caps)
			}
		})
	}
}

func TestInstigatorEffects(t *testing.T) {
	tests := []struct {
		kind Kind
		eff  effect
	}{
		{KindFlame, effectBurn},
		{KindPit, effectBurn},
		{KindVomit, effectInfect},
		{KindExit, effectUseExit},
		{KindLandmine, effectDetonate},
		{KindVaccineGoodie, effectPickUp},
		{KindWall, effectNone},
		{KindPlayer, effectNone},
	}

	for _, tc := range tests {
		if got := instigatorEffects[tc.kind]; got != tc.eff {
			t.Errorf("instigatorEffects[%s] = %d, expected %d", tc.kind, got, tc.eff)
		}
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
}
