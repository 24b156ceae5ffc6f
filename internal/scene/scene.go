// Package scene assembles the simulated world: the ECS world, its component
// stores, the event bus, and the three fixed entities (avatar, target,
// camera). Skill effect entities come and go at runtime; everything here is
// exclusively owned by the tick loop.
package scene

import (
	"github.com/waterfx/scene/internal/component"
	"github.com/waterfx/scene/internal/config"
	"github.com/waterfx/scene/internal/core/ecs"
	"github.com/waterfx/scene/internal/core/event"
	"github.com/waterfx/scene/internal/core/vmath"
)

type Scene struct {
	World *ecs.World
	Bus   *event.Bus

	Transforms *ecs.Store[component.Transform]
	Skills     *ecs.Store[component.SkillEffect]
	Avatars    *ecs.Store[component.Avatar]
	Targets    *ecs.Store[component.Target]
	Cameras    *ecs.Store[component.Camera]

	Avatar ecs.EntityID
	Target ecs.EntityID
	Camera ecs.EntityID
}

// New builds an empty scene and spawns the fixed entities at their
// configured starting positions.
func New(cfg *config.Config) *Scene {
	s := &Scene{
		World:      ecs.NewWorld(),
		Bus:        event.NewBus(),
		Transforms: ecs.NewStore[component.Transform](),
		Skills:     ecs.NewStore[component.SkillEffect](),
		Avatars:    ecs.NewStore[component.Avatar](),
		Targets:    ecs.NewStore[component.Target](),
		Cameras:    ecs.NewStore[component.Camera](),
	}
	s.World.RegisterStore(s.Transforms)
	s.World.RegisterStore(s.Skills)
	s.World.RegisterStore(s.Avatars)
	s.World.RegisterStore(s.Targets)
	s.World.RegisterStore(s.Cameras)

	s.Avatar = s.World.CreateEntity()
	s.Transforms.Set(s.Avatar, &component.Transform{Position: cfg.Avatar.Start.Vec3()})
	s.Avatars.Set(s.Avatar, &component.Avatar{})

	s.Target = s.World.CreateEntity()
	s.Transforms.Set(s.Target, &component.Transform{Position: cfg.Target.Start.Vec3()})
	s.Targets.Set(s.Target, &component.Target{})

	s.Camera = s.World.CreateEntity()
	s.Transforms.Set(s.Camera, &component.Transform{Position: cfg.Camera.Start.Vec3()})
	s.Cameras.Set(s.Camera, &component.Camera{})

	return s
}

// AvatarPosition returns the avatar's current position, or false when the
// avatar entity is absent. Spawning against an absent avatar is a no-op,
// not an error.
func (s *Scene) AvatarPosition() (vmath.Vec3, bool) {
	if !s.World.Alive(s.Avatar) {
		return vmath.Vec3{}, false
	}
	tr, ok := s.Transforms.Get(s.Avatar)
	if !ok {
		return vmath.Vec3{}, false
	}
	return tr.Position, true
}

// LiveSkillCount returns how many skill effects are currently live.
func (s *Scene) LiveSkillCount() int {
	return s.Skills.Len()
}
