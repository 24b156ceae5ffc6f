package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/waterfx/scene/internal/component"
	"github.com/waterfx/scene/internal/core/event"
	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/core/timer"
	"github.com/waterfx/scene/internal/data"
	"github.com/waterfx/scene/internal/input"
	"github.com/waterfx/scene/internal/scene"
)

// SpawnSystem creates a skill effect entity when the trigger is pressed.
// Phase 2 (Update). The trigger is edge-triggered: one press, one effect.
type SpawnSystem struct {
	scene   *scene.Scene
	input   *input.State
	tmpl    *data.EffectTemplate
	maxLive int // 0 = unbounded
	log     *zap.Logger
}

func NewSpawnSystem(sc *scene.Scene, in *input.State, tmpl *data.EffectTemplate, maxLive int, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{scene: sc, input: in, tmpl: tmpl, maxLive: maxLive, log: log}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *SpawnSystem) Update(_ time.Duration) {
	if !s.input.Current().Pressed(input.KeySkill) {
		return
	}
	avatarPos, ok := s.scene.AvatarPosition()
	if !ok {
		// No avatar, nothing to anchor to. Not an error.
		return
	}
	if s.maxLive > 0 && s.scene.Skills.Len() >= s.maxLive {
		s.log.Debug("skill trigger dropped, live cap reached",
			zap.Int("max_live", s.maxLive))
		return
	}

	animTimer, err := timer.New(s.tmpl.FrameInterval, timer.Repeating)
	if err != nil {
		s.log.Error("bad effect template", zap.String("effect", s.tmpl.ID), zap.Error(err))
		return
	}
	lifeTimer, err := timer.New(s.tmpl.Lifetime, timer.Once)
	if err != nil {
		s.log.Error("bad effect template", zap.String("effect", s.tmpl.ID), zap.Error(err))
		return
	}

	pos := avatarPos.Add(s.tmpl.Offset)
	id := s.scene.World.CreateEntity()
	s.scene.Transforms.Set(id, &component.Transform{Position: pos})
	s.scene.Skills.Set(id, &component.SkillEffect{
		AnimTimer:   animTimer,
		LifeTimer:   lifeTimer,
		Frame:       component.FirstFrame,
		TotalFrames: s.tmpl.TotalFrames(),
	})

	event.Emit(s.scene.Bus, event.SkillSpawned{Entity: id, Position: pos})
	s.log.Info("skill spawned",
		zap.Stringer("position", pos),
		zap.Uint64("entity", uint64(id)))
}
