// Package engine implements the match-3 board logic for Glow Match:
// the grid of colored bulbs, run detection, the swap/cascade state
// machine and the no-accidental-match layout generator.
// This package is UI-agnostic and deterministic.
package engine

// Color identifies a bulb color. ColorNone marks an empty cell; valid
// bulb colors are 1..PaletteMax and a board uses a prefix of them
// (Config.Palette).
type Color uint8

// ColorNone is the zero Color and marks an empty grid slot.
const ColorNone Color = 0

// PaletteMax is the largest supported palette size.
const PaletteMax = 6

var colorNames = [PaletteMax + 1]string{
	"none", "red", "green", "yellow", "blue", "magenta", "cyan",
}

// String returns a human-readable color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// Kind describes a bulb's special behavior when it is cleared.
type Kind uint8

const (
	KindRegular   Kind = iota // No special behavior
	KindLineClear             // Clears its full row or column when matched
	KindAreaClear             // Clears a 3x3 area around itself when matched
	KindWildcard              // Joins runs of any color
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindLineClear:
		return "line"
	case KindAreaClear:
		return "area"
	case KindWildcard:
		return "wild"
	default:
		return "unknown"
	}
}

// State is a bulb's transient animation-facing state. The states are
// mutually exclusive: a bulb is either at rest, marked as part of a
// match, falling after a collapse, or freshly spawned by a refill.
type State uint8

const (
	StateSettled State = iota // At rest
	StateMatched              // Part of a detected match, about to clear
	StateFalling              // Moved down during the last collapse
	StateSpawned              // Created by the last refill
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSettled:
		return "settled"
	case StateMatched:
		return "matched"
	case StateFalling:
		return "falling"
	case StateSpawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// Token is one grid cell's content. The zero value is an empty slot.
type Token struct {
	Color Color
	Kind  Kind
	State State

	// Axis records, for a KindLineClear bulb, the orientation of the
	// match that created it. It decides whether the blast clears the
	// row or the column.
	Axis Orientation

	// Row and Col mirror the token's position in grid storage. The
	// grid keeps them in sync on every mutation.
	Row, Col int
}

// Empty reports whether the token represents an empty slot.
func (t Token) Empty() bool {
	return t.Color == ColorNone
}

// Special reports whether clearing this token triggers extra clears.
func (t Token) Special() bool {
	return t.Kind == KindLineClear || t.Kind == KindAreaClear
}
