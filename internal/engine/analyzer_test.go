package engine

import (
	"math/rand"
	"testing"
)

func TestFindHintKnownBoard(t *testing.T) {
	// Swapping (0,0) and (0,1) completes B-A-A -> A-A-A at row 0; the
	// row-major scan must find exactly that pair first.
	g := gridFrom(t, []string{
		"ABAA",
		"BCDC",
		"CDBD",
		"DBCB",
	})

	a, b, ok := FindHint(g, 3)
	if !ok {
		t.Fatal("FindHint found no move on a board with one")
	}
	if a != RC(0, 0) || b != RC(0, 1) {
		t.Errorf("FindHint = %v, %v, want (0,0), (0,1)", a, b)
	}

	// The hypothetical swap must have been undone.
	if g.At(RC(0, 0)).Color != Color(1) || g.At(RC(0, 1)).Color != Color(2) {
		t.Error("FindHint must leave the grid unchanged")
	}
}

func TestHasAnyValidMoveStuckBoard(t *testing.T) {
	// Latin square: every color appears once per row and column, so no
	// single swap can ever line up three.
	g := gridFrom(t, []string{
		"ABCD",
		"BCDA",
		"CDAB",
		"DABC",
	})

	if HasAnyValidMove(g, 3) {
		t.Error("Latin square board must have no valid move")
	}
}

// TestAnalyzerMatchesBruteForce cross-checks the analyzer against an
// exhaustive enumeration of all adjacent swaps on small random boards.
func TestAnalyzerMatchesBruteForce(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rows := 3 + rng.Intn(3)
		cols := 3 + rng.Intn(3)
		palette := 3 + rng.Intn(3)

		gen := NewGenerator(rng, palette, 3)
		g := NewGrid(rows, cols)
		gen.Fill(g)

		want := bruteForceHasMove(g, 3)
		got := HasAnyValidMove(g, 3)
		if got != want {
			t.Errorf("seed %d (%dx%d, %d colors): analyzer = %v, brute force = %v",
				seed, rows, cols, palette, got, want)
		}

		// When a hint exists, performing it must really produce a match.
		if a, b, ok := FindHint(g, 3); ok {
			clone := g.Clone()
			clone.swapRaw(a, b)
			if len(FindMatches(clone, 3)) == 0 {
				t.Errorf("seed %d: hint %v<->%v produces no match", seed, a, b)
			}
		}
	}
}

// bruteForceHasMove tries every adjacent swap on a clone and runs the
// full-board detector, ignoring the anchored-query optimization.
func bruteForceHasMove(g *Grid, minRun int) bool {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			a := RC(row, col)
			for _, b := range []Coord{a.Add(0, 1), a.Add(1, 0)} {
				if !g.InBounds(b) {
					continue
				}
				clone := g.Clone()
				clone.swapRaw(a, b)
				if len(FindMatches(clone, minRun)) > 0 {
					return true
				}
			}
		}
	}
	return false
}
