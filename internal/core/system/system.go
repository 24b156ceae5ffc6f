package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: capture the tick's input snapshot
	PhaseEvents                  // 1: deliver last tick's events
	PhaseUpdate                  // 2: spawn, avatar movement, camera
	PhasePostUpdate              // 3: animation stepping, lifetime expiry
	PhaseOutput                  // 4: diagnostics for the host
	PhaseCleanup                 // 5: destroy queued entities
)

// System is the interface every scene system implements. Update is called
// exactly once per tick with the tick's time delta.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
