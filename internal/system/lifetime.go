package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/waterfx/scene/internal/component"
	"github.com/waterfx/scene/internal/core/ecs"
	"github.com/waterfx/scene/internal/core/event"
	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/scene"
)

// LifetimeSystem ticks every skill's lifetime and queues expired effects
// for end-of-tick destruction. Phase 3 (PostUpdate), after AnimationSystem.
// Deferring the destroy keeps the scan safe: no entry is skipped or visited
// twice however many effects expire in one pass.
type LifetimeSystem struct {
	scene *scene.Scene
	log   *zap.Logger
}

func NewLifetimeSystem(sc *scene.Scene, log *zap.Logger) *LifetimeSystem {
	return &LifetimeSystem{scene: sc, log: log}
}

func (s *LifetimeSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *LifetimeSystem) Update(dt time.Duration) {
	s.scene.Skills.Each(func(id ecs.EntityID, sk *component.SkillEffect) {
		sk.LifeTimer.Tick(dt)
		if !sk.LifeTimer.Finished() {
			return
		}
		s.scene.World.MarkDestroyed(id)
		event.Emit(s.scene.Bus, event.SkillDespawned{
			Entity:   id,
			Lifetime: sk.LifeTimer.Duration(),
		})
		s.log.Info("skill despawned", zap.Uint64("entity", uint64(id)))
	})
}
