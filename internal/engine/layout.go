package engine

import "math/rand"

// Generator produces initial and refill layouts that are guaranteed
// free of ready-made runs. Colors are chosen cell by cell, excluding
// any color that would complete a run with already-placed neighbors,
// instead of generating freely and reshuffling after the fact.
type Generator struct {
	rng     *rand.Rand
	palette int
	minRun  int

	// Exclusion recency, per color: clock ticks once per pick and
	// excludedAt records when a color was last ruled out. The
	// exhausted-palette fallback reads these.
	clock      uint64
	excludedAt []uint64
}

// NewGenerator creates a generator drawing from the first palette
// colors with the given minimum run length.
func NewGenerator(rng *rand.Rand, palette, minRun int) *Generator {
	return &Generator{
		rng:        rng,
		palette:    palette,
		minRun:     minRun,
		excludedAt: make([]uint64, palette+1),
	}
}

// Fill populates the whole grid row-major under the
// forbid-instant-match policy. The result satisfies IsSettled.
func (gen *Generator) Fill(g *Grid) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := RC(row, col)
			g.set(c, Token{Color: gen.pickColor(g, c)})
		}
	}
	gen.repair(g)
}

// RefillColumn spawns fresh bulbs in the empty slots at the top of a
// column after a collapse, top-down, evaluated against the column's
// already-settled neighbors. Spawned bulbs carry StateSpawned so the
// consumer can run an entrance animation. Returns the spawned
// coordinates in top-down order.
func (gen *Generator) RefillColumn(g *Grid, col int) []Coord {
	var spawned []Coord
	for row := 0; row < g.Rows; row++ {
		c := RC(row, col)
		if !g.At(c).Empty() {
			break
		}
		g.set(c, Token{Color: gen.pickColor(g, c), State: StateSpawned})
		spawned = append(spawned, c)
	}
	gen.repairSpawned(g, spawned)
	return spawned
}

// repairSpawned re-rolls freshly spawned cells that ended up inside a
// run after a fallback pick. Settled tokens are never touched.
func (gen *Generator) repairSpawned(g *Grid, spawned []Coord) {
	for attempt := 0; attempt < 16; attempt++ {
		matches := FindMatches(g, gen.minRun)
		if len(matches) == 0 {
			return
		}
		for _, m := range matches {
			for _, c := range m.Cells {
				if g.At(c).State == StateSpawned {
					t := g.At(c)
					t.Color = gen.pickColor(g, c)
					g.set(c, t)
					break
				}
			}
		}
	}
}

// Reshuffle regenerates the whole board in place. Color counts are not
// preserved; the caller decides when a reshuffle is allowed.
func (gen *Generator) Reshuffle(g *Grid) {
	gen.Fill(g)
}

// pickColor chooses a color for cell c that does not complete a
// horizontal or vertical run of >= minRun with already-occupied
// neighbors. If every palette color is excluded (possible near
// palette-size-3 edge cases) it falls back to the least-recently
// excluded color; repair re-rolls such cells afterwards.
func (gen *Generator) pickColor(g *Grid, c Coord) Color {
	gen.clock++
	allowed := make([]Color, 0, gen.palette)
	excluded := make([]Color, 0, gen.palette)
	var fallback Color
	var oldest uint64
	for i := 0; i < gen.palette; i++ {
		color := Color(i + 1)
		if gen.completesRun(g, c, color) {
			// Recency from earlier picks decides the fallback.
			if fallback == ColorNone || gen.excludedAt[color] < oldest {
				fallback = color
				oldest = gen.excludedAt[color]
			}
			excluded = append(excluded, color)
			continue
		}
		allowed = append(allowed, color)
	}
	for _, color := range excluded {
		gen.excludedAt[color] = gen.clock
	}
	if len(allowed) == 0 {
		return fallback
	}
	return allowed[gen.rng.Intn(len(allowed))]
}

// completesRun reports whether placing color at c would create a run
// of >= minRun along either axis with the occupied cells around it.
func (gen *Generator) completesRun(g *Grid, c Coord, color Color) bool {
	h := 1 + gen.countRun(g, c, color, 0, -1) + gen.countRun(g, c, color, 0, 1)
	if h >= gen.minRun {
		return true
	}
	v := 1 + gen.countRun(g, c, color, -1, 0) + gen.countRun(g, c, color, 1, 0)
	return v >= gen.minRun
}

// countRun counts consecutive occupied cells of the given color
// starting one step from c in direction (dr, dc).
func (gen *Generator) countRun(g *Grid, c Coord, color Color, dr, dc int) int {
	n := 0
	for cur := c.Add(dr, dc); g.InBounds(cur); cur = cur.Add(dr, dc) {
		t := g.At(cur)
		if t.Empty() || (t.Color != color && t.Kind != KindWildcard) {
			break
		}
		n++
	}
	return n
}

// repair re-rolls single cells until no accidental run remains. Only
// needed after a fallback pick; bounded to keep generation total.
func (gen *Generator) repair(g *Grid) {
	for attempt := 0; attempt < 64; attempt++ {
		matches := FindMatches(g, gen.minRun)
		if len(matches) == 0 {
			return
		}
		for _, m := range matches {
			mid := m.Cells[len(m.Cells)/2]
			t := g.At(mid)
			t.Color = gen.pickColor(g, mid)
			g.set(mid, t)
		}
	}
}
