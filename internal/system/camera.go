package system

import (
	"time"

	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/core/vmath"
	"github.com/waterfx/scene/internal/input"
	"github.com/waterfx/scene/internal/scene"
)

// CameraSystem integrates free-fly camera motion: WASDQE translation and
// arrow-key yaw/pitch, all plain per-tick integration. Phase 2 (Update).
type CameraSystem struct {
	scene       *scene.Scene
	input       *input.State
	speed       float64
	rotateSpeed float64 // radians per second
}

func NewCameraSystem(sc *scene.Scene, in *input.State, speed, rotateSpeed float64) *CameraSystem {
	return &CameraSystem{scene: sc, input: in, speed: speed, rotateSpeed: rotateSpeed}
}

func (s *CameraSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *CameraSystem) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if !s.scene.World.Alive(s.scene.Camera) {
		return
	}
	tr, ok := s.scene.Transforms.Get(s.scene.Camera)
	if !ok {
		return
	}
	snap := s.input.Current()

	var move vmath.Vec3
	if snap.Held(input.KeyW) {
		move.Z -= 1
	}
	if snap.Held(input.KeyS) {
		move.Z += 1
	}
	if snap.Held(input.KeyA) {
		move.X -= 1
	}
	if snap.Held(input.KeyD) {
		move.X += 1
	}
	if snap.Held(input.KeyQ) {
		move.Y -= 1
	}
	if snap.Held(input.KeyE) {
		move.Y += 1
	}

	var yaw, pitch float64
	if snap.Held(input.KeyLeft) {
		yaw += 1
	}
	if snap.Held(input.KeyRight) {
		yaw -= 1
	}
	if snap.Held(input.KeyUp) {
		pitch += 1
	}
	if snap.Held(input.KeyDown) {
		pitch -= 1
	}

	secs := dt.Seconds()
	if !move.IsZero() {
		tr.Position = tr.Position.Add(move.Scale(s.speed * secs))
	}
	tr.Yaw += yaw * s.rotateSpeed * secs
	tr.Pitch += pitch * s.rotateSpeed * secs
}
