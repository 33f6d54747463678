// Package config provides YAML-based configuration loading for the gridtoken
// world, rules and viewport.
package config

import "fmt"

// Config is the top-level game configuration.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Rules    RulesConfig    `yaml:"rules"`
	Viewport ViewportConfig `yaml:"viewport"`
}

// WorldConfig defines the procedural generation parameters.
type WorldConfig struct {
	Seed             int64   `yaml:"seed"`              // 0 = derive from --seed flag or time
	SpawnProbability float64 `yaml:"spawn_probability"` // Chance of a token per cell
	Levels           []int   `yaml:"levels"`            // Base token values generation may place
}

// RulesConfig defines the interaction rules.
type RulesConfig struct {
	Target int     `yaml:"target"` // Token value that wins the game
	Radius int     `yaml:"radius"` // Interaction radius in cells (Chebyshev)
	Step   float64 `yaml:"step"`   // Distance one movement intent covers
}

// ViewportConfig defines the default visible region span in cells.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.World.SpawnProbability < 0 || c.World.SpawnProbability > 1 {
		return fmt.Errorf("config: spawn_probability %v outside [0, 1]", c.World.SpawnProbability)
	}
	if len(c.World.Levels) == 0 {
		return fmt.Errorf("config: world.levels must not be empty")
	}
	for _, lvl := range c.World.Levels {
		if lvl <= 0 {
			return fmt.Errorf("config: invalid base level %d", lvl)
		}
	}
	if c.Rules.Target <= 0 {
		return fmt.Errorf("config: target must be positive, got %d", c.Rules.Target)
	}
	if c.Rules.Radius <= 0 {
		return fmt.Errorf("config: radius must be positive, got %d", c.Rules.Radius)
	}
	if c.Rules.Step <= 0 {
		return fmt.Errorf("config: step must be positive, got %v", c.Rules.Step)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport %dx%d must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}
