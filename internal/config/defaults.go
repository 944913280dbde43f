package config

import (
	_ "embed"
)

//go:embed defaults/bulbs.yaml
var defaultBulbsYAML []byte

// DefaultBulbsConfig returns the default Glow Match configuration.
func DefaultBulbsConfig() BulbsConfig {
	return BulbsConfig{
		Board: BoardConfig{
			Rows:    9,
			Cols:    9,
			Palette: 5,
		},
		Runs: RunConfig{
			MinRun:       3,
			LineClearRun: 4,
			AreaClearRun: 5,
			WildcardRun:  0,
		},
		Scoring: ScoringConfig{
			BaseScore:  30,
			ExtraScore: 20,
		},
		Rules: RulesConfig{
			MoveLimit:  30,
			TimeLimit:  120,
			Reshuffles: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBulbsYAML
}
