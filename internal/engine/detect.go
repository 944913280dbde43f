package engine

// Run detection. Row scans and column scans are independent: a run
// crossing at an intersection is reported as two separate matches,
// never merged into a compound shape. FindMatches returns horizontal
// runs in row-major order followed by vertical runs in column-major
// order, so the result ordering is stable for a given board.

// FindMatches scans the whole board and returns every maximal
// same-color run of length >= minRun.
func FindMatches(g *Grid, minRun int) []Match {
	var matches []Match
	for row := 0; row < g.Rows; row++ {
		line := make([]Coord, g.Cols)
		for col := 0; col < g.Cols; col++ {
			line[col] = RC(row, col)
		}
		matches = scanLine(g, line, minRun, Horizontal, matches)
	}
	for col := 0; col < g.Cols; col++ {
		line := make([]Coord, g.Rows)
		for row := 0; row < g.Rows; row++ {
			line[row] = RC(row, col)
		}
		matches = scanLine(g, line, minRun, Vertical, matches)
	}
	return matches
}

// FindMatchAt is the anchored query: it checks only the row and the
// column through c and returns the run(s) covering c, horizontal
// first. On large boards this is what makes swap validation and move
// analysis cheap compared to a full-board rescan.
func FindMatchAt(g *Grid, c Coord, minRun int) []Match {
	if !g.InBounds(c) || g.At(c).Empty() {
		return nil
	}

	var matches []Match

	line := make([]Coord, g.Cols)
	for col := 0; col < g.Cols; col++ {
		line[col] = RC(c.Row, col)
	}
	for _, m := range scanLine(g, line, minRun, Horizontal, nil) {
		if m.Contains(c) {
			matches = append(matches, m)
		}
	}

	line = make([]Coord, g.Rows)
	for row := 0; row < g.Rows; row++ {
		line[row] = RC(row, c.Col)
	}
	for _, m := range scanLine(g, line, minRun, Vertical, nil) {
		if m.Contains(c) {
			matches = append(matches, m)
		}
	}
	return matches
}

// scanLine walks one row or column and appends every qualifying run to
// matches. Empty cells always terminate a run. Wildcard bulbs join the
// run in progress regardless of color; a run of only wildcards adopts
// the first concrete color it meets.
func scanLine(g *Grid, line []Coord, minRun int, o Orientation, matches []Match) []Match {
	start := 0
	runColor := ColorNone

	flush := func(end int) {
		if end-start >= minRun && runColor != ColorNone {
			cells := make([]Coord, end-start)
			copy(cells, line[start:end])
			matches = append(matches, Match{Color: runColor, Orientation: o, Cells: cells})
		}
	}

	for i, c := range line {
		t := g.At(c)
		switch {
		case t.Empty():
			flush(i)
			start = i + 1
			runColor = ColorNone
		case t.Kind == KindWildcard:
			// Joins whatever run is in progress.
		case runColor == ColorNone:
			runColor = t.Color
		case t.Color != runColor:
			flush(i)
			start = i
			runColor = t.Color
		}
	}
	flush(len(line))
	return matches
}
