// Package config provides YAML-based game configuration loading and
// difficulty presets for Glow Match.
package config

import "github.com/dkotenko/glowmatch/internal/engine"

// BulbsConfig contains all configuration for the bulb board and the
// mode rules layered on top of it.
type BulbsConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Runs    RunConfig     `yaml:"runs"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`
}

// BoardConfig defines the board geometry and palette.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	Palette int `yaml:"palette"` // Distinct bulb colors in play (3-6)
}

// RunConfig defines the match thresholds and the promotion ladder.
// All values are run lengths.
type RunConfig struct {
	MinRun       int `yaml:"min_run"`
	LineClearRun int `yaml:"line_clear_run"`
	AreaClearRun int `yaml:"area_clear_run"`
	WildcardRun  int `yaml:"wildcard_run"` // 0 disables wildcard bulbs
}

// ScoringConfig defines match scoring.
type ScoringConfig struct {
	BaseScore  int `yaml:"base_score"`  // For a minimum-length run
	ExtraScore int `yaml:"extra_score"` // Per bulb beyond the minimum
}

// RulesConfig defines the mode limits.
type RulesConfig struct {
	MoveLimit  int `yaml:"move_limit"` // Moves mode
	TimeLimit  int `yaml:"time_limit"` // Timed mode, seconds
	Reshuffles int `yaml:"reshuffles"` // Classic mode allowance
}

// Engine converts the board sections into an engine configuration.
func (c BulbsConfig) Engine() engine.Config {
	return engine.Config{
		Rows:         c.Board.Rows,
		Cols:         c.Board.Cols,
		Palette:      c.Board.Palette,
		MinRun:       c.Runs.MinRun,
		LineClearRun: c.Runs.LineClearRun,
		AreaClearRun: c.Runs.AreaClearRun,
		WildcardRun:  c.Runs.WildcardRun,
		BaseScore:    c.Scoring.BaseScore,
		ExtraScore:   c.Scoring.ExtraScore,
	}
}

// Validate checks the configuration via the engine rules.
func (c BulbsConfig) Validate() error {
	return c.Engine().Validate()
}
