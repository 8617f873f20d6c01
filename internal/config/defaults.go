package config

import (
	_ "embed"
)

//go:embed defaults/zombiedash.yaml
var defaultYAML []byte

// DefaultConfig returns the default rules.
func DefaultConfig() Config {
	return Config{
		Game: GameRules{
			Lives:            3,
			StartLevel:       1,
			FinalLevel:       100,
			ActivationRadius: 10,
			SenseRange:       80,
		},
		Player: PlayerRules{
			Step:           4,
			InfectionLimit: 500,
			GoodieScore:    50,
			FlameLength:    3,
		},
		Citizen: CitizenRules{
			Step:           2,
			InfectionLimit: 500,
			SavedScore:     500,
			LostScore:      -1000,
		},
		Zombie: ZombieRules{
			Step:              1,
			VomitRange:        10,
			VomitChance:       3,
			PlanMin:           3,
			PlanMax:           10,
			SmartShare:        3,
			DumbScore:         1000,
			SmartScore:        2000,
			VaccineDropChance: 10,
		},
		Goodies: GoodieRules{
			Vaccines: 1,
			Flames:   5,
			Mines:    2,
		},
		Landmine: LandmineRules{
			SafetyTicks: 30,
		},
		Projectile: ProjectileRules{
			Lifetime: 3,
		},
	}
}
