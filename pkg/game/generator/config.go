package generator

import (
	"errors"
	"fmt"
)

// Config holds the tuning constants of the room generator
type Config struct {
	// PlacementRetries is how many extra blueprints are tried per direction.
	PlacementRetries int

	LoopChance     float64
	LoopMinOverlap int

	VaultChance      float64
	VaultMinDistance int
	VaultBudget      map[MapSize]int

	EnemyMinDistance int
	EnemySkipChance  float64

	KeyChance float64
	KeyBudget map[MapSize]int
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		PlacementRetries: 5,
		LoopChance:       0.3,
		LoopMinOverlap:   3,
		VaultChance:      0.3,
		VaultMinDistance: 5,
		VaultBudget:      map[MapSize]int{XS: 1, S: 1, M: 2, L: 3, XL: 4, XXL: 6},
		EnemyMinDistance: 2,
		EnemySkipChance:  0.7,
		KeyChance:        0.5,
		KeyBudget:        map[MapSize]int{XS: 1, S: 2, M: 3, L: 4, XL: 5, XXL: 8},
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.PlacementRetries < 0 {
		return errors.New("placement retries must not be negative")
	}
	if c.LoopMinOverlap < 1 {
		return errors.New("loop overlap must be at least 1")
	}

	chances := map[string]float64{
		"loop":       c.LoopChance,
		"vault":      c.VaultChance,
		"enemy skip": c.EnemySkipChance,
		"key":        c.KeyChance,
	}
	for name, p := range chances {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s chance %v is outside [0,1]", name, p)
		}
	}

	return nil
}
