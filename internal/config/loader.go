package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "zombiedash.yaml"

// Load loads the simulation rules.
// Search order: customPath -> ~/.zombiedash/configs/zombiedash.yaml -> ./configs/zombiedash.yaml -> embedded default.
// Files are layered over DefaultConfig so partial files only override what they name.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects rule sets the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Game.Lives <= 0:
		return fmt.Errorf("config: lives must be positive, got %d", c.Game.Lives)
	case c.Game.StartLevel <= 0:
		return fmt.Errorf("config: start_level must be positive, got %d", c.Game.StartLevel)
	case c.Zombie.PlanMin <= 0 || c.Zombie.PlanMax < c.Zombie.PlanMin:
		return fmt.Errorf("config: invalid zombie plan range [%d,%d]", c.Zombie.PlanMin, c.Zombie.PlanMax)
	case c.Zombie.VomitChance <= 0 || c.Zombie.VaccineDropChance <= 0:
		return fmt.Errorf("config: zombie chances must be positive")
	case c.Zombie.SmartShare < 0 || c.Zombie.SmartShare > 10:
		return fmt.Errorf("config: smart_share must be within [0,10], got %d", c.Zombie.SmartShare)
	case c.Player.Step <= 0 || c.Citizen.Step <= 0 || c.Zombie.Step <= 0:
		return fmt.Errorf("config: movement steps must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zombiedash", "configs", filename)
}
