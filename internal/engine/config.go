package engine

import "fmt"

// Config holds the board parameters accepted at engine construction.
// All thresholds are lengths, not deltas: a run of exactly MinRun
// clears plain, a run of LineClearRun leaves a line-clear bulb, a run
// of AreaClearRun or longer leaves an area-clear bulb. WildcardRun can
// sit above AreaClearRun to enable wildcard promotion; setting it to 0
// disables it.
type Config struct {
	Rows    int
	Cols    int
	Palette int // Number of distinct colors in play (3..PaletteMax)
	MinRun  int // Minimum run length that counts as a match

	LineClearRun int
	AreaClearRun int
	WildcardRun  int // 0 = never promote to wildcard

	BaseScore  int // Score for a minimum-length run
	ExtraScore int // Added per cell beyond the minimum
}

// DefaultConfig returns the standard 9x9 five-color board.
func DefaultConfig() Config {
	return Config{
		Rows:         9,
		Cols:         9,
		Palette:      5,
		MinRun:       3,
		LineClearRun: 4,
		AreaClearRun: 5,
		WildcardRun:  0,
		BaseScore:    30,
		ExtraScore:   20,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 2 {
		return fmt.Errorf("engine: board %dx%d too small", c.Rows, c.Cols)
	}
	if c.MinRun < 3 {
		return fmt.Errorf("engine: min run %d must be at least 3", c.MinRun)
	}
	if c.Rows < c.MinRun && c.Cols < c.MinRun {
		return fmt.Errorf("engine: board %dx%d cannot fit a run of %d", c.Rows, c.Cols, c.MinRun)
	}
	if c.Palette < 3 || c.Palette > PaletteMax {
		return fmt.Errorf("engine: palette size %d outside 3..%d", c.Palette, PaletteMax)
	}
	if c.LineClearRun <= c.MinRun {
		return fmt.Errorf("engine: line-clear run %d must exceed min run %d", c.LineClearRun, c.MinRun)
	}
	if c.AreaClearRun <= c.LineClearRun {
		return fmt.Errorf("engine: area-clear run %d must exceed line-clear run %d", c.AreaClearRun, c.LineClearRun)
	}
	if c.WildcardRun != 0 && c.WildcardRun <= c.AreaClearRun {
		return fmt.Errorf("engine: wildcard run %d must exceed area-clear run %d", c.WildcardRun, c.AreaClearRun)
	}
	if c.BaseScore <= 0 {
		return fmt.Errorf("engine: base score %d must be positive", c.BaseScore)
	}
	if c.ExtraScore < 0 {
		return fmt.Errorf("engine: extra score %d must not be negative", c.ExtraScore)
	}
	return nil
}

// matchScore returns the score for one match at the given cascade
// depth (chain starts at 1 for the swap-triggered clear).
func (c Config) matchScore(length, chain int) int {
	return (c.BaseScore + c.ExtraScore*(length-c.MinRun)) * chain
}
