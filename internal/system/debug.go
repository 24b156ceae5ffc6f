package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/waterfx/scene/internal/component"
	"github.com/waterfx/scene/internal/core/ecs"
	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/scene"
)

// DebugSystem logs each live skill's position and frame at debug level,
// once per tick. Phase 4 (Output). Diagnostic only, not part of the
// simulation contract.
type DebugSystem struct {
	scene *scene.Scene
	log   *zap.Logger
}

func NewDebugSystem(sc *scene.Scene, log *zap.Logger) *DebugSystem {
	return &DebugSystem{scene: sc, log: log}
}

func (s *DebugSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *DebugSystem) Update(_ time.Duration) {
	if !s.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	ecs.Each2(s.scene.Transforms, s.scene.Skills,
		func(id ecs.EntityID, tr *component.Transform, sk *component.SkillEffect) {
			s.log.Debug("skill state",
				zap.Uint64("entity", uint64(id)),
				zap.Stringer("position", tr.Position),
				zap.Int("frame", sk.Frame))
		})
}
