package system

import (
	"time"

	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/input"
)

// Source supplies one input snapshot per tick. The cmd host polls stdin;
// tests script snapshots directly.
type Source interface {
	Poll() input.Snapshot
}

// InputSystem captures the tick's input snapshot. Phase 0 (Input).
type InputSystem struct {
	src   Source
	state *input.State
}

func NewInputSystem(src Source, state *input.State) *InputSystem {
	return &InputSystem{src: src, state: state}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	s.state.Set(s.src.Poll())
}
