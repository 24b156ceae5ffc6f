package system

import (
	"time"

	"github.com/waterfx/scene/internal/core/event"
	coresys "github.com/waterfx/scene/internal/core/system"
)

// EventDispatchSystem rotates the event bus buffers and delivers last
// tick's events. Phase 1 (Events).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseEvents }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
