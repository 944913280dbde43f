package engine

import (
	"errors"
	"reflect"
	"testing"
)

// engineWithGrid builds an engine around a manufactured board so tests
// can exercise exact scenarios.
func engineWithGrid(t *testing.T, cfg Config, rows []string) *Engine {
	t.Helper()
	e, err := New(cfg, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g := gridFrom(t, rows)
	if g.Rows != cfg.Rows || g.Cols != cfg.Cols {
		t.Fatalf("board %dx%d does not match config %dx%d", g.Rows, g.Cols, cfg.Rows, cfg.Cols)
	}
	e.grid = g
	return e
}

// assertRestState checks that the engine ended in the rest state its
// event log announced.
func assertRestState(t *testing.T, e *Engine, events []Event) {
	t.Helper()
	if len(events) == 0 {
		t.Fatal("no events emitted")
	}
	if _, stuck := events[len(events)-1].(BoardStuckEvent); stuck {
		if e.State() != StateNoMoves {
			t.Errorf("BoardStuck emitted but state = %v", e.State())
		}
	} else if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
}

func test4x4Config() Config {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Palette = 4, 4, 4
	return cfg
}

func test5x5Config() Config {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Palette = 5, 5, 4
	return cfg
}

func TestNewEngineSettled(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		e, err := New(DefaultConfig(), seed)
		if err != nil {
			t.Fatalf("seed %d: New: %v", seed, err)
		}
		if e.State() != StateIdle {
			t.Errorf("seed %d: state = %v, want idle", seed, e.State())
		}
		snap := e.Snapshot()
		for row := 0; row < snap.Rows; row++ {
			for col := 0; col < snap.Cols; col++ {
				if snap.At(row, col).Empty() {
					t.Fatalf("seed %d: empty cell at (%d,%d)", seed, row, col)
				}
			}
		}
		if !e.grid.IsSettled(e.cfg.MinRun) {
			t.Errorf("seed %d: fresh board not settled", seed)
		}
		if !HasAnyValidMove(e.grid, e.cfg.MinRun) {
			t.Errorf("seed %d: fresh board has no valid move", seed)
		}
	}
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny board", func(c *Config) { c.Rows, c.Cols = 1, 1 }},
		{"board below min run", func(c *Config) { c.Rows, c.Cols = 2, 2 }},
		{"min run too small", func(c *Config) { c.MinRun = 2 }},
		{"palette too small", func(c *Config) { c.Palette = 2 }},
		{"palette too large", func(c *Config) { c.Palette = PaletteMax + 1 }},
		{"line threshold at min", func(c *Config) { c.LineClearRun = c.MinRun }},
		{"area below line", func(c *Config) { c.AreaClearRun = c.LineClearRun }},
		{"wildcard below area", func(c *Config) { c.WildcardRun = c.AreaClearRun }},
		{"zero base score", func(c *Config) { c.BaseScore = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := New(cfg, 1); err == nil {
				t.Error("New accepted an invalid config")
			}
		})
	}
}

func TestRequestSwapRejectsMalformed(t *testing.T) {
	e, err := New(DefaultConfig(), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := e.Snapshot()

	tests := []struct {
		name string
		a, b Coord
	}{
		{"not adjacent", RC(0, 0), RC(0, 2)},
		{"diagonal", RC(0, 0), RC(1, 1)},
		{"out of bounds", RC(-1, 0), RC(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.RequestSwap(tc.a, tc.b)
			var invalid *InvalidSwapError
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want *InvalidSwapError", err)
			}
			if e.State() != StateIdle {
				t.Errorf("state = %v, want idle", e.State())
			}
			if !reflect.DeepEqual(e.Snapshot(), before) {
				t.Error("rejected request must not change the board")
			}
		})
	}
}

func TestRequestSwapBusy(t *testing.T) {
	e, err := New(DefaultConfig(), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.state = StateNoMoves

	if _, err := e.RequestSwap(RC(0, 0), RC(0, 1)); !errors.Is(err, ErrEngineBusy) {
		t.Errorf("err = %v, want ErrEngineBusy", err)
	}
}

func TestRequestSwapNoMatchReverts(t *testing.T) {
	e := engineWithGrid(t, test4x4Config(), []string{
		"ABCD",
		"BCDA",
		"CDAB",
		"DABC",
	})
	before := e.Snapshot()

	events, err := e.RequestSwap(RC(1, 1), RC(1, 2))
	if err != nil {
		t.Fatalf("RequestSwap: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %v", len(events), events)
	}
	move, ok := events[0].(InvalidMoveEvent)
	if !ok {
		t.Fatalf("event = %T, want InvalidMoveEvent", events[0])
	}
	if move.A != RC(1, 1) || move.B != RC(1, 2) {
		t.Errorf("InvalidMoveEvent coords = %v, %v", move.A, move.B)
	}
	if !reflect.DeepEqual(e.Snapshot(), before) {
		t.Error("reverted swap must restore the original arrangement")
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
}

func TestRequestSwapResolvesSimpleMatch(t *testing.T) {
	// Swapping (1,0) and (1,1) turns row 1 into B-A-A-A: one match of
	// length 3, one cascade step spawning 3 bulbs at the top of the
	// affected columns, then rest.
	e := engineWithGrid(t, test4x4Config(), []string{
		"CDCD",
		"ABAA",
		"DCDC",
		"CDCD",
	})

	events, err := e.RequestSwap(RC(1, 0), RC(1, 1))
	if err != nil {
		t.Fatalf("RequestSwap: %v", err)
	}

	resolved, ok := events[0].(MatchResolvedEvent)
	if !ok {
		t.Fatalf("events[0] = %T, want MatchResolvedEvent", events[0])
	}
	if len(resolved.Matches) != 1 || resolved.Matches[0].Len() != 3 {
		t.Fatalf("resolved matches = %v, want one run of 3", resolved.Matches)
	}
	if resolved.Chain != 1 {
		t.Errorf("chain = %d, want 1", resolved.Chain)
	}
	if resolved.ScoreDelta != e.cfg.BaseScore {
		t.Errorf("score = %d, want %d", resolved.ScoreDelta, e.cfg.BaseScore)
	}

	cascade, ok := events[1].(CascadeStepEvent)
	if !ok {
		t.Fatalf("events[1] = %T, want CascadeStepEvent", events[1])
	}
	if len(cascade.Cleared) != 3 {
		t.Errorf("cleared %d cells, want 3", len(cascade.Cleared))
	}
	if len(cascade.Spawned) != 3 {
		t.Errorf("spawned %d cells, want 3", len(cascade.Spawned))
	}
	for _, c := range cascade.Spawned {
		if c.Row != 0 {
			t.Errorf("spawn %v not at the top of its column", c)
		}
	}

	if !e.grid.IsSettled(e.cfg.MinRun) {
		t.Error("board must be settled after resolution")
	}
	if len(e.grid.EmptyCoords()) != 0 {
		t.Error("no empty cells may persist after resolution")
	}
	assertRestState(t, e, events)
}

func TestRequestSwapPromotesLineClear(t *testing.T) {
	// Swapping (1,2) and (2,2) turns row 2 into A-A-A-A-C: a run of 4
	// leaves a line-clear bulb at the swapped cell.
	e := engineWithGrid(t, test5x5Config(), []string{
		"DCDCD",
		"CDADC",
		"AABAC",
		"BBCBD",
		"DCDCA",
	})

	events, err := e.RequestSwap(RC(1, 2), RC(2, 2))
	if err != nil {
		t.Fatalf("RequestSwap: %v", err)
	}

	resolved := events[0].(MatchResolvedEvent)
	if len(resolved.Matches) != 1 || resolved.Matches[0].Len() != 4 {
		t.Fatalf("resolved matches = %v, want one run of 4", resolved.Matches)
	}

	bulb := e.grid.At(RC(2, 2))
	if bulb.Kind != KindLineClear {
		t.Fatalf("token at (2,2) = %v, want line-clear", bulb.Kind)
	}
	if bulb.Color != Color(1) || bulb.Axis != Horizontal {
		t.Errorf("line-clear bulb = %+v, want color A, horizontal axis", bulb)
	}

	// The promoted cell is re-occupied, so the cascade only cleared
	// the other three run cells.
	cascade := events[1].(CascadeStepEvent)
	if len(cascade.Cleared) != 3 || len(cascade.Spawned) != 3 {
		t.Errorf("cascade cleared %d spawned %d, want 3 and 3",
			len(cascade.Cleared), len(cascade.Spawned))
	}
	assertRestState(t, e, events)
}

func TestRequestSwapPromotesAreaClear(t *testing.T) {
	// A run of 5 leaves an area-clear bulb at the swapped cell.
	e := engineWithGrid(t, test5x5Config(), []string{
		"DCDCD",
		"CDADC",
		"AABAA",
		"BBCBD",
		"DCDCB",
	})

	events, err := e.RequestSwap(RC(1, 2), RC(2, 2))
	if err != nil {
		t.Fatalf("RequestSwap: %v", err)
	}

	resolved := events[0].(MatchResolvedEvent)
	if len(resolved.Matches) != 1 || resolved.Matches[0].Len() != 5 {
		t.Fatalf("resolved matches = %v, want one run of 5", resolved.Matches)
	}
	want := e.cfg.BaseScore + 2*e.cfg.ExtraScore
	if resolved.ScoreDelta != want {
		t.Errorf("score = %d, want %d", resolved.ScoreDelta, want)
	}

	if kind := e.grid.At(RC(2, 2)).Kind; kind != KindAreaClear {
		t.Errorf("token at (2,2) = %v, want area-clear", kind)
	}
	assertRestState(t, e, events)
}

func TestKindForLen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WildcardRun = 6
	e := &Engine{cfg: cfg}

	tests := []struct {
		length int
		want   Kind
	}{
		{3, KindRegular},
		{4, KindLineClear},
		{5, KindAreaClear},
		{6, KindWildcard},
		{7, KindWildcard},
	}
	for _, tc := range tests {
		if got := e.kindForLen(tc.length); got != tc.want {
			t.Errorf("kindForLen(%d) = %v, want %v", tc.length, got, tc.want)
		}
	}

	// With wildcard promotion disabled long runs stay area-clear.
	e.cfg.WildcardRun = 0
	if got := e.kindForLen(9); got != KindAreaClear {
		t.Errorf("kindForLen(9) with wildcard off = %v, want area-clear", got)
	}
}

func TestPromoteAnchorsAtSwappedCell(t *testing.T) {
	e := &Engine{cfg: DefaultConfig()}

	m := Match{
		Color:       Color(1),
		Orientation: Horizontal,
		Cells:       []Coord{RC(2, 0), RC(2, 1), RC(2, 2), RC(2, 3)},
	}

	// Swapped cell inside the run anchors the special there.
	p := e.promote([]Match{m}, RC(1, 1), RC(2, 1))
	if _, ok := p[RC(2, 1)]; !ok {
		t.Errorf("promotion not anchored at swapped cell: %v", p)
	}

	// A cascade match without a swapped cell anchors at the middle.
	p = e.promote([]Match{m}, RC(4, 4), RC(4, 3))
	if _, ok := p[RC(2, 2)]; !ok {
		t.Errorf("promotion not anchored at run middle: %v", p)
	}
}

func TestMatchScoreChain(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		length, chain, want int
	}{
		{3, 1, 30},
		{4, 1, 50},
		{5, 1, 70},
		{3, 2, 60},
		{4, 3, 150},
	}
	for _, tc := range tests {
		if got := cfg.matchScore(tc.length, tc.chain); got != tc.want {
			t.Errorf("matchScore(%d, %d) = %d, want %d", tc.length, tc.chain, got, tc.want)
		}
	}
}

func TestReshuffleFromStuckBoard(t *testing.T) {
	e := engineWithGrid(t, test4x4Config(), []string{
		"ABCD",
		"BCDA",
		"CDAB",
		"DABC",
	})
	e.state = StateNoMoves

	if err := e.Reshuffle(); err != nil {
		t.Fatalf("Reshuffle: %v", err)
	}
	if e.State() != StateIdle {
		t.Errorf("state after reshuffle = %v, want idle", e.State())
	}
	if !e.grid.IsSettled(e.cfg.MinRun) {
		t.Error("reshuffled board not settled")
	}
	if !HasAnyValidMove(e.grid, e.cfg.MinRun) {
		t.Error("reshuffled board has no valid move")
	}
}

func TestHintOnFreshBoard(t *testing.T) {
	e, err := New(DefaultConfig(), 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, b, ok := e.Hint()
	if !ok {
		t.Fatal("fresh board must have a hint")
	}
	if !a.Adjacent(b) {
		t.Errorf("hint cells %v, %v not adjacent", a, b)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	e, err := New(DefaultConfig(), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	snap := e.Snapshot()
	snap.Tokens[0] = Token{Color: ColorNone}

	if e.grid.At(RC(0, 0)).Empty() {
		t.Error("mutating a snapshot must not affect the engine")
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() (Snapshot, []Event) {
		e := engineWithGrid(t, test4x4Config(), []string{
			"CDCD",
			"ABAA",
			"DCDC",
			"CDCD",
		})
		events, err := e.RequestSwap(RC(1, 0), RC(1, 1))
		if err != nil {
			t.Fatalf("RequestSwap: %v", err)
		}
		return e.Snapshot(), events
	}

	snap1, events1 := run()
	snap2, events2 := run()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Error("same seed and swap produced different boards")
	}
	if !reflect.DeepEqual(events1, events2) {
		t.Error("same seed and swap produced different event logs")
	}
}
