package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/waterfx/scene/internal/core/vmath"
)

type Config struct {
	Scene   SceneConfig   `toml:"scene"`
	Skill   SkillConfig   `toml:"skill"`
	Avatar  AvatarConfig  `toml:"avatar"`
	Target  TargetConfig  `toml:"target"`
	Camera  CameraConfig  `toml:"camera"`
	Logging LoggingConfig `toml:"logging"`
}

type SceneConfig struct {
	TickRate    time.Duration `toml:"tick_rate"`
	EffectsPath string        `toml:"effects_path"`
	ScriptsDir  string        `toml:"scripts_dir"`
}

type SkillConfig struct {
	Effect      string `toml:"effect"`       // effect template id
	MaxLive     int    `toml:"max_live"`     // 0 = unbounded
	SharedFrame bool   `toml:"shared_frame"` // all live effects show one frame
}

type AvatarConfig struct {
	Speed float64 `toml:"speed"`
	Start Vec     `toml:"start"`
}

type TargetConfig struct {
	Start Vec `toml:"start"`
}

type CameraConfig struct {
	Speed       float64 `toml:"speed"`
	RotateSpeed float64 `toml:"rotate_speed"` // radians per second
	Start       Vec     `toml:"start"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Vec is a TOML-friendly 3D point.
type Vec struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

func (v Vec) Vec3() vmath.Vec3 {
	return vmath.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scene.TickRate <= 0 {
		return fmt.Errorf("scene.tick_rate must be positive, got %v", c.Scene.TickRate)
	}
	if c.Skill.MaxLive < 0 {
		return fmt.Errorf("skill.max_live must be >= 0, got %d", c.Skill.MaxLive)
	}
	return nil
}

// Defaults mirrors the original demo scene: avatar and target on the ground
// plane, camera looking down from behind, Space-to-spawn water skill.
func Defaults() *Config {
	return &Config{
		Scene: SceneConfig{
			TickRate:    50 * time.Millisecond,
			EffectsPath: "data/effects.yaml",
			ScriptsDir:  "scripts",
		},
		Skill: SkillConfig{
			Effect:      "water",
			MaxLive:     0,
			SharedFrame: false,
		},
		Avatar: AvatarConfig{
			Speed: 3.0,
			Start: Vec{X: 0, Y: 0.5, Z: 0},
		},
		Target: TargetConfig{
			Start: Vec{X: 5, Y: 0.5, Z: 5},
		},
		Camera: CameraConfig{
			Speed:       5.0,
			RotateSpeed: 1.0,
			Start:       Vec{X: 0, Y: 5, Z: 10},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
