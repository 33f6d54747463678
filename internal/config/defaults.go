package config

import (
	_ "embed"
)

//go:embed defaults/gridtoken.yaml
var defaultGridtokenYAML []byte

// Default returns the hardcoded default configuration, used when the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			Seed:             1337,
			SpawnProbability: 0.15,
			Levels:           []int{1, 2, 4, 8},
		},
		Rules: RulesConfig{
			Target: 256,
			Radius: 2,
			Step:   1.0,
		},
		Viewport: ViewportConfig{
			Width:  21,
			Height: 15,
		},
	}
}
