package component

import "github.com/waterfx/scene/internal/core/vmath"

// Transform holds an entity's placement in the scene. Yaw and pitch are
// radians; only the camera uses them.
type Transform struct {
	Position vmath.Vec3
	Yaw      float64
	Pitch    float64
}
