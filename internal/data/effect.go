package data

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/waterfx/scene/internal/core/vmath"
)

// EffectTemplate describes one skill effect type: its sprite grid and the
// timing the spawn controller stamps onto every instance.
type EffectTemplate struct {
	ID            string
	Name          string
	Sprite        string // sprite sheet path, consumed by a renderer host
	Cols          int
	Rows          int
	CellSize      float64
	FrameInterval time.Duration
	Lifetime      time.Duration
	Offset        vmath.Vec3 // spawn offset from the avatar
}

// TotalFrames is the sprite-grid cell count, including the reserved frame.
func (t *EffectTemplate) TotalFrames() int {
	return t.Cols * t.Rows
}

// EffectTable holds all effect templates indexed by id.
type EffectTable struct {
	effects map[string]*EffectTemplate
}

// Get returns a template by id, or nil if not found.
func (t *EffectTable) Get(id string) *EffectTemplate {
	return t.effects[id]
}

// Count returns the number of loaded templates.
func (t *EffectTable) Count() int {
	return len(t.effects)
}

// --- YAML loading ---

type effectEntry struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Sprite          string  `yaml:"sprite"`
	Cols            int     `yaml:"cols"`
	Rows            int     `yaml:"rows"`
	CellSize        float64 `yaml:"cell_size"`
	FrameIntervalMs int     `yaml:"frame_interval_ms"`
	LifetimeMs      int     `yaml:"lifetime_ms"`
	Offset          struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		Z float64 `yaml:"z"`
	} `yaml:"offset"`
}

type effectFile struct {
	Effects []effectEntry `yaml:"effects"`
}

// LoadEffectTable reads effect templates from a YAML file. Templates are
// validated on load so spawn-time timer construction cannot fail.
func LoadEffectTable(path string) (*EffectTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read effects %s: %w", path, err)
	}
	var f effectFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse effects %s: %w", path, err)
	}

	table := &EffectTable{effects: make(map[string]*EffectTemplate, len(f.Effects))}
	for _, e := range f.Effects {
		tmpl, err := e.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("effects %s: %w", path, err)
		}
		if _, dup := table.effects[tmpl.ID]; dup {
			return nil, fmt.Errorf("effects %s: duplicate id %q", path, tmpl.ID)
		}
		table.effects[tmpl.ID] = tmpl
	}
	return table, nil
}

func (e effectEntry) toTemplate() (*EffectTemplate, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("effect with empty id")
	}
	if e.Cols < 1 || e.Rows < 1 || e.Cols*e.Rows < 2 {
		// Frame 0 is reserved, so a grid needs at least one more cell.
		return nil, fmt.Errorf("effect %q: grid needs at least 2 cells, got %dx%d", e.ID, e.Cols, e.Rows)
	}
	if e.FrameIntervalMs <= 0 {
		return nil, fmt.Errorf("effect %q: frame_interval_ms must be positive, got %d", e.ID, e.FrameIntervalMs)
	}
	if e.LifetimeMs <= 0 {
		return nil, fmt.Errorf("effect %q: lifetime_ms must be positive, got %d", e.ID, e.LifetimeMs)
	}
	return &EffectTemplate{
		ID:            e.ID,
		Name:          e.Name,
		Sprite:        e.Sprite,
		Cols:          e.Cols,
		Rows:          e.Rows,
		CellSize:      e.CellSize,
		FrameInterval: time.Duration(e.FrameIntervalMs) * time.Millisecond,
		Lifetime:      time.Duration(e.LifetimeMs) * time.Millisecond,
		Offset:        vmath.Vec3{X: e.Offset.X, Y: e.Offset.Y, Z: e.Offset.Z},
	}, nil
}
