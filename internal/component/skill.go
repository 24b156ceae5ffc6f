package component

import "github.com/waterfx/scene/internal/core/timer"

const (
	// ReservedFrame is the sprite-grid cell treated as blank. Animation
	// never lands on it; a wrap that would redirects to FirstFrame.
	ReservedFrame = 0
	FirstFrame    = 1
)

// SkillEffect is one live, time-limited visual effect. Its position is fixed
// at spawn (the Transform on the same entity); the effect does not follow
// the avatar afterwards.
type SkillEffect struct {
	AnimTimer   *timer.Timer // repeating, one frame step per firing
	LifeTimer   *timer.Timer // one-shot, expiry removes the entity
	Frame       int          // current sprite-grid index, never ReservedFrame after spawn
	TotalFrames int          // cols*rows of the sprite grid
}
