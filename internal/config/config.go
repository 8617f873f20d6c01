// Package config provides YAML-based rule configuration loading and
// difficulty presets for the simulation.
package config

// Config contains every tunable rule of the simulation.
type Config struct {
	Game       GameRules       `yaml:"game"`
	Player     PlayerRules     `yaml:"player"`
	Citizen    CitizenRules    `yaml:"citizen"`
	Zombie     ZombieRules     `yaml:"zombie"`
	Goodies    GoodieRules     `yaml:"goodies"`
	Landmine   LandmineRules   `yaml:"landmine"`
	Projectile ProjectileRules `yaml:"projectile"`
}

// GameRules defines session-level parameters.
type GameRules struct {
	Lives            int     `yaml:"lives"`
	StartLevel       int     `yaml:"start_level"`
	FinalLevel       int     `yaml:"final_level"`       // reaching this level number wins outright
	ActivationRadius float64 `yaml:"activation_radius"` // centre distance below which actors interact
	SenseRange       float64 `yaml:"sense_range"`       // follow/flee/chase radius
}

// PlayerRules defines player parameters.
type PlayerRules struct {
	Step           float64 `yaml:"step"`
	InfectionLimit int     `yaml:"infection_limit"` // dies once the counter exceeds this
	GoodieScore    int     `yaml:"goodie_score"`
	FlameLength    int     `yaml:"flame_length"`
}

// CitizenRules defines citizen parameters.
type CitizenRules struct {
	Step           float64 `yaml:"step"`
	InfectionLimit int     `yaml:"infection_limit"` // turns once the counter exceeds this
	SavedScore     int     `yaml:"saved_score"`
	LostScore      int     `yaml:"lost_score"`
}

// ZombieRules defines zombie parameters.
type ZombieRules struct {
	Step              float64 `yaml:"step"`
	VomitRange        float64 `yaml:"vomit_range"`
	VomitChance       int     `yaml:"vomit_chance"` // 1 in N
	PlanMin           int     `yaml:"plan_min"`
	PlanMax           int     `yaml:"plan_max"`
	SmartShare        int     `yaml:"smart_share"` // out of 10 converted citizens
	DumbScore         int     `yaml:"dumb_score"`
	SmartScore        int     `yaml:"smart_score"`
	VaccineDropChance int     `yaml:"vaccine_drop_chance"` // 1 in N
}

// GoodieRules defines what each goodie grants.
type GoodieRules struct {
	Vaccines int `yaml:"vaccines"`
	Flames   int `yaml:"flames"`
	Mines    int `yaml:"mines"`
}

// LandmineRules defines landmine parameters.
type LandmineRules struct {
	SafetyTicks int `yaml:"safety_ticks"`
}

// ProjectileRules defines flame and vomit lifetime.
type ProjectileRules struct {
	Lifetime int `yaml:"lifetime"` // turns survived before self-termination
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
// Unknown names fall back to normal.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return DifficultyNormal
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the loaded rules untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.Lives = 5
		cfg.Player.InfectionLimit = 800
		cfg.Citizen.InfectionLimit = 800
		cfg.Landmine.SafetyTicks = 20
	case DifficultyHard:
		cfg.Game.Lives = 2
		cfg.Player.InfectionLimit = 300
		cfg.Citizen.InfectionLimit = 300
		cfg.Zombie.SmartShare = 5
	}
}
