// Package config loads the simulation tuning tables from YAML.
// Every knob has a compiled-in default so an empty path yields a fully
// playable configuration; a file only overrides what it names.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all tunable simulation parameters.
type Config struct {
	Clock     ClockConfig        `yaml:"clock"`
	Fade      FadeConfig         `yaml:"fade"`
	Inventory InventoryConfig    `yaml:"inventory"`
	Stamina   StaminaConfig      `yaml:"stamina"`
	Trees     TreeConfig         `yaml:"trees"`
	Mana      ManaConfig         `yaml:"mana"`
	Crops     map[string]CropDef `yaml:"crops"`
}

// ClockConfig controls the real-time to game-time ratio.
type ClockConfig struct {
	SecondsPerTenMinutes float64 `yaml:"seconds_per_ten_minutes"` // Real seconds per 10 game minutes
}

// FadeConfig controls location/sleep transition fades.
type FadeConfig struct {
	Seconds float64 `yaml:"seconds"` // Duration of each fade half (out, in)
}

// InventoryConfig sizes the player inventory.
type InventoryConfig struct {
	Slots int `yaml:"slots"`
}

// StaminaConfig controls player stamina drain and recovery.
type StaminaConfig struct {
	Max      int `yaml:"max"`
	ToolCost int `yaml:"tool_cost"` // Drained per tool use
}

// TreeConfig holds growth-day thresholds for all trees.
type TreeConfig struct {
	SaplingDays     int `yaml:"sapling_days"`      // Sapling → Young
	YoungDays       int `yaml:"young_days"`        // Young → Mature
	StumpRegrowDays int `yaml:"stump_regrow_days"` // Stump → Sapling, 0 disables
}

// ManaConfig holds mana node recharge parameters.
type ManaConfig struct {
	RechargePerDay int `yaml:"recharge_per_day"`
	MaxCharge      int `yaml:"max_charge"`
}

// CropDef describes one plantable crop species.
type CropDef struct {
	DaysPerStage        int    `yaml:"days_per_stage"`         // Watered days per growth stage
	MaxDaysWithoutWater int    `yaml:"max_days_without_water"` // Drought days until Dead
	YieldItem           string `yaml:"yield_item"`             // Registry key of the harvested material
	YieldQty            int    `yaml:"yield_qty"`
	RegrowStage         int    `yaml:"regrow_stage"` // Stage after harvest; -1 = delete on harvest
	SellPrice           int    `yaml:"sell_price"`
}

// Default returns the compiled-in tuning values.
func Default() Config {
	return Config{
		Clock:     ClockConfig{SecondsPerTenMinutes: 7},
		Fade:      FadeConfig{Seconds: 0.5},
		Inventory: InventoryConfig{Slots: 24},
		Stamina:   StaminaConfig{Max: 100, ToolCost: 2},
		Trees:     TreeConfig{SaplingDays: 3, YoungDays: 5, StumpRegrowDays: 7},
		Mana:      ManaConfig{RechargePerDay: 10, MaxCharge: 50},
		Crops: map[string]CropDef{
			"corn": {
				DaysPerStage:        2,
				MaxDaysWithoutWater: 3,
				YieldItem:           "corn",
				YieldQty:            1,
				RegrowStage:         2, // Back to Growing for another ear
				SellPrice:           25,
			},
			"turnip": {
				DaysPerStage:        1,
				MaxDaysWithoutWater: 3,
				YieldItem:           "turnip",
				YieldQty:            1,
				RegrowStage:         -1,
				SellPrice:           12,
			},
			"manaberry": {
				DaysPerStage:        3,
				MaxDaysWithoutWater: 2,
				YieldItem:           "manaberry",
				YieldQty:            2,
				RegrowStage:         1, // Regrows from Sprout
				SellPrice:           40,
			},
		},
	}
}

// Load reads a tuning file, returning defaults when the path is empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Clock.SecondsPerTenMinutes <= 0 {
		return fmt.Errorf("clock.seconds_per_ten_minutes must be positive")
	}
	if c.Inventory.Slots <= 0 {
		return fmt.Errorf("inventory.slots must be positive")
	}
	for name, def := range c.Crops {
		if def.DaysPerStage <= 0 {
			return fmt.Errorf("crop %q: days_per_stage must be positive", name)
		}
		if def.MaxDaysWithoutWater <= 0 {
			return fmt.Errorf("crop %q: max_days_without_water must be positive", name)
		}
	}
	return nil
}
