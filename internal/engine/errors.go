package engine

import (
	"errors"
	"fmt"
)

// ErrEngineBusy is returned when a swap is requested while the engine
// is not in its Idle state. Requests are dropped, never queued.
var ErrEngineBusy = errors.New("engine: busy, swap request dropped")

// InvalidSwapError reports a structurally invalid swap request:
// out-of-bounds or non-adjacent coordinates. The grid is unchanged.
type InvalidSwapError struct {
	A, B   Coord
	Reason string
}

func (e *InvalidSwapError) Error() string {
	return fmt.Sprintf("engine: invalid swap %s<->%s: %s", e.A, e.B, e.Reason)
}
