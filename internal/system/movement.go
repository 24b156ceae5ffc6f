package system

import (
	"time"

	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/core/vmath"
	"github.com/waterfx/scene/internal/input"
	"github.com/waterfx/scene/internal/scene"
)

// MovementSystem integrates avatar movement from held IJKL keys:
// position += direction * speed * dt. Phase 2 (Update).
type MovementSystem struct {
	scene *scene.Scene
	input *input.State
	speed float64
}

func NewMovementSystem(sc *scene.Scene, in *input.State, speed float64) *MovementSystem {
	return &MovementSystem{scene: sc, input: in, speed: speed}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if !s.scene.World.Alive(s.scene.Avatar) {
		return
	}
	tr, ok := s.scene.Transforms.Get(s.scene.Avatar)
	if !ok {
		return
	}
	snap := s.input.Current()
	var dir vmath.Vec3
	if snap.Held(input.KeyI) {
		dir.Z -= 1
	}
	if snap.Held(input.KeyK) {
		dir.Z += 1
	}
	if snap.Held(input.KeyJ) {
		dir.X -= 1
	}
	if snap.Held(input.KeyL) {
		dir.X += 1
	}
	if dir.IsZero() {
		return
	}
	tr.Position = tr.Position.Add(dir.Scale(s.speed * dt.Seconds()))
}
