package system

import (
	"time"

	"github.com/waterfx/scene/internal/component"
	"github.com/waterfx/scene/internal/core/ecs"
	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/core/timer"
	"github.com/waterfx/scene/internal/data"
	"github.com/waterfx/scene/internal/scene"
)

// AnimationSystem advances skill animation frames. Phase 3 (PostUpdate),
// registered before LifetimeSystem so a reaped effect still shows its final
// frame this tick.
//
// Default mode: every instance owns its timer and frame. Shared mode: one
// timer and frame counter on the system drive all live instances, so every
// effect renders the identical frame (the single-shared-material variant).
type AnimationSystem struct {
	scene *scene.Scene

	shared      bool
	sharedTimer *timer.Timer
	sharedFrame int
	totalFrames int
}

func NewAnimationSystem(sc *scene.Scene, tmpl *data.EffectTemplate, shared bool) (*AnimationSystem, error) {
	s := &AnimationSystem{
		scene:       sc,
		shared:      shared,
		sharedFrame: component.FirstFrame,
		totalFrames: tmpl.TotalFrames(),
	}
	if shared {
		t, err := timer.New(tmpl.FrameInterval, timer.Repeating)
		if err != nil {
			return nil, err
		}
		s.sharedTimer = t
	}
	return s, nil
}

func (s *AnimationSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *AnimationSystem) Update(dt time.Duration) {
	if s.shared {
		s.sharedTimer.Tick(dt)
		s.sharedFrame = advanceFrame(s.sharedFrame, s.sharedTimer.TimesFinished(), s.totalFrames)
		s.scene.Skills.Each(func(_ ecs.EntityID, sk *component.SkillEffect) {
			sk.Frame = s.sharedFrame
		})
		return
	}
	s.scene.Skills.Each(func(_ ecs.EntityID, sk *component.SkillEffect) {
		sk.AnimTimer.Tick(dt)
		if sk.AnimTimer.JustFinished() {
			sk.Frame = advanceFrame(sk.Frame, sk.AnimTimer.TimesFinished(), sk.TotalFrames)
		}
	})
}

// advanceFrame steps the frame index once per timer firing, wrapping over
// the grid and redirecting the reserved frame 0 to 1. One step per firing,
// so a dt spanning several firings advances several frames.
func advanceFrame(frame, steps, totalFrames int) int {
	for i := 0; i < steps; i++ {
		frame = (frame + 1) % totalFrames
		if frame == component.ReservedFrame {
			frame = component.FirstFrame
		}
	}
	return frame
}
