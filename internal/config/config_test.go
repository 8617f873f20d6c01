package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte("game:\n  lives: 7\nlandmine:\n  safety_ticks: 12\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Game.Lives)
	}
	if cfg.Landmine.SafetyTicks != 12 {
		t.Errorf("SafetyTicks = %d, expected 12", cfg.Landmine.SafetyTicks)
	}
	if cfg.Player.Step != 4 {
		t.Errorf("Player.Step = %v, expected untouched default 4", cfg.Player.Step)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("zombie:\n  plan_min: 5\n  plan_max: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an inverted plan range")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		infection  int
		smartShare int
	}{
		{DifficultyEasy, 5, 800, 3},
		{DifficultyNormal, 3, 500, 3},
		{DifficultyHard, 2, 300, 5},
		{DifficultyFixed, 3, 500, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Game.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Game.Lives, tc.lives)
			}
			if cfg.Player.InfectionLimit != tc.infection {
				t.Errorf("InfectionLimit = %d, expected %d", cfg.Player.InfectionLimit, tc.infection)
			}
			if cfg.Zombie.SmartShare != tc.smartShare {
				t.Errorf("SmartShare = %d, expected %d", cfg.Zombie.SmartShare, tc.smartShare)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be hard")
	}
	if ParsePreset("nightmare") != DifficultyNormal {
		t.Error("unknown presets should fall back to normal")
	}
}
