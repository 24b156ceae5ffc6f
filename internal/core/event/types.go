package event

import (
	"time"

	"github.com/waterfx/scene/internal/core/ecs"
	"github.com/waterfx/scene/internal/core/vmath"
)

// SkillSpawned is emitted when a skill effect entity is created.
type SkillSpawned struct {
	Entity   ecs.EntityID
	Position vmath.Vec3
}

// SkillDespawned is emitted when a skill effect's lifetime expires.
type SkillDespawned struct {
	Entity   ecs.EntityID
	Lifetime time.Duration
}
