package bulbs

import "github.com/dkotenko/glowmatch/internal/engine"

// Playback durations in ticks (~60fps).
const (
	burstDuration = 9 // Cleared bulbs flash before vanishing
	dropDuration  = 6 // Fallers land, spawns pop in
)

// animPhase is the current playback phase within one cascade frame.
type animPhase int

const (
	phaseNone animPhase = iota
	phaseBurst
	phaseDrop
)

// cascadeFrame is one detect-clear-refill cycle lifted from the engine
// event log, replayed at screen speed.
type cascadeFrame struct {
	cleared []engine.Coord
	falls   []engine.Fall
	spawned []engine.Coord
	chain   int
}

// animator replays an engine event log one cascade frame at a time.
// The engine resolves instantly; this is the only place pacing exists.
type animator struct {
	frames []cascadeFrame
	phase  animPhase
	ticks  int
}

// load queues playback for an event log. Logs without cascade steps
// (invalid moves, stuck boards) produce no frames.
func (a *animator) load(events []engine.Event) {
	a.frames = a.frames[:0]
	for _, ev := range events {
		if step, ok := ev.(engine.CascadeStepEvent); ok {
			a.frames = append(a.frames, cascadeFrame{
				cleared: step.Cleared,
				falls:   step.Falls,
				spawned: step.Spawned,
				chain:   step.Chain,
			})
		}
	}
	if len(a.frames) > 0 {
		a.phase = phaseBurst
		a.ticks = 0
	}
}

// active reports whether playback is in progress.
func (a *animator) active() bool {
	return a.phase != phaseNone
}

// step advances playback by one tick.
func (a *animator) step() {
	if a.phase == phaseNone {
		return
	}
	a.ticks++

	switch a.phase {
	case phaseBurst:
		if a.ticks >= burstDuration {
			a.phase = phaseDrop
			a.ticks = 0
		}
	case phaseDrop:
		if a.ticks >= dropDuration {
			a.frames = a.frames[1:]
			a.ticks = 0
			if len(a.frames) == 0 {
				a.phase = phaseNone
			} else {
				a.phase = phaseBurst
			}
		}
	}
}

// current returns the frame being played, or nil when idle.
func (a *animator) current() (*cascadeFrame, animPhase) {
	if a.phase == phaseNone || len(a.frames) == 0 {
		return nil, phaseNone
	}
	return &a.frames[0], a.phase
}

// flashOn alternates every few ticks for the burst blink effect.
func (a *animator) flashOn() bool {
	return (a.ticks/3)%2 == 0
}
