package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the name is a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyPreset adjusts the board for a difficulty preset. Fewer colors
// means more matches and longer cascades; more colors means scarcer
// runs and tighter move budgets. DifficultyFixed leaves the loaded
// configuration untouched.
func ApplyPreset(cfg *BulbsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Palette = 4
		cfg.Rules.MoveLimit = 40
		cfg.Rules.TimeLimit = 180
		cfg.Rules.Reshuffles = 5
	case DifficultyNormal:
		cfg.Board.Palette = 5
		cfg.Rules.MoveLimit = 30
		cfg.Rules.TimeLimit = 120
		cfg.Rules.Reshuffles = 3
	case DifficultyHard:
		cfg.Board.Palette = 6
		cfg.Rules.MoveLimit = 20
		cfg.Rules.TimeLimit = 90
		cfg.Rules.Reshuffles = 1
	}
}
