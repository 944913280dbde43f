package engine

// Move analysis: hypothetically swap every cell with its right and
// lower neighbor, test the two touched cells with the anchored query,
// and undo immediately. Worst case O(rows*cols) hypothetical swaps,
// each verified in O(run length). This is the dominant cost on a large
// board and the reason FindMatchAt exists separately from FindMatches.

// HasAnyValidMove reports whether any single adjacent swap on the
// given board would produce a match.
func HasAnyValidMove(g *Grid, minRun int) bool {
	_, _, ok := FindHint(g, minRun)
	return ok
}

// FindHint returns the first adjacent pair whose swap produces a
// match, for the consumer to highlight as a suggestion. The scan
// order is row-major with the rightward swap checked before the
// downward one, so hints are deterministic for a given board.
func FindHint(g *Grid, minRun int) (Coord, Coord, bool) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			a := RC(row, col)
			if b := a.Add(0, 1); g.InBounds(b) && swapMatches(g, a, b, minRun) {
				return a, b, true
			}
			if b := a.Add(1, 0); g.InBounds(b) && swapMatches(g, a, b, minRun) {
				return a, b, true
			}
		}
	}
	return Coord{}, Coord{}, false
}

// swapMatches tests a hypothetical swap and restores the board before
// returning.
func swapMatches(g *Grid, a, b Coord, minRun int) bool {
	if g.At(a).Empty() || g.At(b).Empty() {
		return false
	}
	g.swapRaw(a, b)
	matched := len(FindMatchAt(g, a, minRun)) > 0 || len(FindMatchAt(g, b, minRun)) > 0
	g.swapRaw(a, b)
	return matched
}
