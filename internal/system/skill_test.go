package system

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/waterfx/scene/internal/component"
	"github.com/waterfx/scene/internal/config"
	"github.com/waterfx/scene/internal/core/ecs"
	"github.com/waterfx/scene/internal/core/event"
	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/core/timer"
	"github.com/waterfx/scene/internal/core/vmath"
	"github.com/waterfx/scene/internal/data"
	"github.com/waterfx/scene/internal/input"
	"github.com/waterfx/scene/internal/scene"
)

// scriptedSource feeds one prepared snapshot per tick, empty when the test
// scripted nothing.
type scriptedSource struct {
	next    input.Snapshot
	pending bool
}

func (s *scriptedSource) Poll() input.Snapshot {
	if !s.pending {
		return input.NewSnapshot()
	}
	s.pending = false
	return s.next
}

type rig struct {
	sc     *scene.Scene
	src    *scriptedSource
	runner *coresys.Runner
}

// newRig assembles the full tick pipeline the way cmd/waterfx does, with
// the avatar at the origin.
func newRig(t *testing.T, tmpl *data.EffectTemplate, maxLive int, sharedFrame bool) *rig {
	t.Helper()

	cfg := config.Defaults()
	cfg.Avatar.Start = config.Vec{}

	sc := scene.New(cfg)
	state := input.NewState()
	src := &scriptedSource{}
	log := zap.NewNop()

	anim, err := NewAnimationSystem(sc, tmpl, sharedFrame)
	if err != nil {
		t.Fatal(err)
	}

	runner := coresys.NewRunner()
	runner.Register(NewInputSystem(src, state))
	runner.Register(NewEventDispatchSystem(sc.Bus))
	runner.Register(NewSpawnSystem(sc, state, tmpl, maxLive, log))
	runner.Register(NewMovementSystem(sc, state, cfg.Avatar.Speed))
	runner.Register(NewCameraSystem(sc, state, cfg.Camera.Speed, cfg.Camera.RotateSpeed))
	runner.Register(anim)
	runner.Register(NewLifetimeSystem(sc, log))
	runner.Register(NewDebugSystem(sc, log))
	runner.Register(NewCleanupSystem(sc.World))

	return &rig{sc: sc, src: src, runner: runner}
}

func waterTemplate() *data.EffectTemplate {
	return &data.EffectTemplate{
		ID:            "water",
		Name:          "Water Burst",
		Cols:          5,
		Rows:          5,
		CellSize:      192,
		FrameInterval: 50 * time.Millisecond,
		Lifetime:      3 * time.Second,
		Offset:        vmath.New(1, 1, 0),
	}
}

func (r *rig) tick(dt time.Duration, snap input.Snapshot) {
	r.src.next = snap
	r.src.pending = true
	r.runner.Tick(dt)
}

func (r *rig) tickIdle(dt time.Duration) {
	r.runner.Tick(dt)
}

func skillPress() input.Snapshot {
	snap := input.NewSnapshot()
	snap.Press(input.KeySkill)
	return snap
}

// skills returns the live skill entities, in no particular order.
func (r *rig) skills() []ecs.EntityID {
	var ids []ecs.EntityID
	r.sc.Skills.Each(func(id ecs.EntityID, _ *component.SkillEffect) {
		ids = append(ids, id)
	})
	return ids
}

func (r *rig) onlySkill(t *testing.T) (ecs.EntityID, *component.SkillEffect, *component.Transform) {
	t.Helper()
	ids := r.skills()
	if len(ids) != 1 {
		t.Fatalf("expected exactly 1 live skill, got %d", len(ids))
	}
	sk, _ := r.sc.Skills.Get(ids[0])
	tr, ok := r.sc.Transforms.Get(ids[0])
	if !ok {
		t.Fatal("skill entity has no transform")
	}
	return ids[0], sk, tr
}

func TestSpawnCreatesEffectAtAvatarOffset(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)

	r.tick(0, skillPress())

	_, sk, tr := r.onlySkill(t)
	if want := vmath.New(1, 1, 0); tr.Position != want {
		t.Errorf("position = %v, want %v", tr.Position, want)
	}
	if sk.Frame != component.FirstFrame {
		t.Errorf("initial frame = %d, want %d", sk.Frame, component.FirstFrame)
	}
	if sk.TotalFrames != 25 {
		t.Errorf("total frames = %d, want 25", sk.TotalFrames)
	}
	if sk.AnimTimer.Duration() != 50*time.Millisecond || sk.AnimTimer.Mode() != timer.Repeating {
		t.Errorf("anim timer = %v %v", sk.AnimTimer.Duration(), sk.AnimTimer.Mode())
	}
	if sk.LifeTimer.Duration() != 3*time.Second || sk.LifeTimer.Mode() != timer.Once {
		t.Errorf("lifetime timer = %v %v", sk.LifeTimer.Duration(), sk.LifeTimer.Mode())
	}
}

func TestSpawnTracksMovedAvatar(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)

	// Hold L for one second: avatar moves +3 on X, then spawn anchors to
	// the new position. The effect itself must not move afterwards.
	snap := input.NewSnapshot()
	snap.Hold(input.KeyL)
	r.tick(time.Second, snap)

	r.tick(0, skillPress())
	_, _, tr := r.onlySkill(t)
	if want := vmath.New(4, 1, 0); tr.Position != want {
		t.Errorf("position = %v, want %v", tr.Position, want)
	}

	snap = input.NewSnapshot()
	snap.Hold(input.KeyI)
	r.tick(time.Second, snap)
	_, _, tr = r.onlySkill(t)
	if want := vmath.New(4, 1, 0); tr.Position != want {
		t.Errorf("effect moved with the avatar: %v", tr.Position)
	}
}

func TestSpawnIsEdgeTriggered(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)

	held := input.NewSnapshot()
	held.Hold(input.KeySkill)
	r.tick(0, held)
	if n := r.sc.LiveSkillCount(); n != 0 {
		t.Fatalf("held trigger spawned %d effects, want 0", n)
	}

	r.tick(0, skillPress())
	if n := r.sc.LiveSkillCount(); n != 1 {
		t.Fatalf("press spawned %d effects, want 1", n)
	}
}

func TestSpawnWithoutAvatarIsNoOp(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)

	r.sc.World.MarkDestroyed(r.sc.Avatar)
	r.sc.World.FlushDestroyed()

	r.tick(0, skillPress())
	if n := r.sc.LiveSkillCount(); n != 0 {
		t.Fatalf("spawn without avatar created %d effects", n)
	}
}

func TestSpawnRespectsLiveCap(t *testing.T) {
	r := newRig(t, waterTemplate(), 1, false)

	r.tick(0, skillPress())
	r.tick(0, skillPress())
	if n := r.sc.LiveSkillCount(); n != 1 {
		t.Fatalf("live count = %d, want capped at 1", n)
	}
}

func TestFrameAdvanceSkipsReservedAndWraps(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)
	r.tick(0, skillPress())

	// One 50ms tick per frame step. 24 steps walk the 24 usable cells
	// exactly once and wrap back to frame 1, never landing on 0.
	checkpoints := map[int]int{1: 2, 12: 13, 23: 24, 24: 1}
	for i := 1; i <= 24; i++ {
		r.tickIdle(50 * time.Millisecond)
		_, sk, _ := r.onlySkill(t)
		if sk.Frame == component.ReservedFrame {
			t.Fatalf("tick %d landed on the reserved frame", i)
		}
		if want, ok := checkpoints[i]; ok && sk.Frame != want {
			t.Errorf("after %d ticks frame = %d, want %d", i, sk.Frame, want)
		}
	}
}

func TestFrameAdvanceHandlesMultipleFiringsPerTick(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)
	r.tick(0, skillPress())

	// 500ms = 10 firings in a single tick: one step per firing.
	r.tickIdle(500 * time.Millisecond)
	_, sk, _ := r.onlySkill(t)
	if sk.Frame != 11 {
		t.Errorf("frame = %d after 10 firings from 1, want 11", sk.Frame)
	}
}

func TestLifetimeReapingIsExact(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)
	r.tick(0, skillPress())

	r.tickIdle(2990 * time.Millisecond)
	if n := r.sc.LiveSkillCount(); n != 1 {
		t.Fatalf("effect reaped early at 2.99s (live=%d)", n)
	}

	r.tickIdle(20 * time.Millisecond)
	if n := r.sc.LiveSkillCount(); n != 0 {
		t.Fatalf("effect still live at 3.01s (live=%d)", n)
	}
}

func TestConcurrentInstancesAreIndependent(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)

	r.tick(0, skillPress())
	first, _, _ := r.onlySkill(t)

	r.tickIdle(time.Second) // first: 20 steps, frame 21

	r.tick(0, skillPress())
	if n := r.sc.LiveSkillCount(); n != 2 {
		t.Fatalf("live count = %d, want 2", n)
	}

	r.tickIdle(50 * time.Millisecond)
	skFirst, _ := r.sc.Skills.Get(first)
	if skFirst == nil || skFirst.Frame != 22 {
		t.Fatalf("first instance frame = %+v, want 22", skFirst)
	}
	var secondFrame int
	r.sc.Skills.Each(func(id ecs.EntityID, sk *component.SkillEffect) {
		if id != first {
			secondFrame = sk.Frame
		}
	})
	if secondFrame != 2 {
		t.Errorf("second instance frame = %d, want 2", secondFrame)
	}

	// First instance reaches its 3s lifetime; the second has 1s left.
	r.tickIdle(1950 * time.Millisecond)
	if r.sc.Skills.Has(first) {
		t.Error("first instance should be reaped at 3.0s")
	}
	if n := r.sc.LiveSkillCount(); n != 1 {
		t.Errorf("live count = %d, want the younger instance only", n)
	}
}

// TestSharedFrameMode exercises the single-shared-material variant: one
// frame counter drives every live instance, so instances spawned at
// different times still render identical frames. This intentionally
// diverges from the default per-instance behavior verified above.
func TestSharedFrameMode(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, true)

	r.tick(0, skillPress())
	r.tickIdle(500 * time.Millisecond) // shared frame: 1 + 10 steps = 11

	r.tick(0, skillPress())
	if n := r.sc.LiveSkillCount(); n != 2 {
		t.Fatalf("live count = %d, want 2", n)
	}

	frames := map[int]bool{}
	r.sc.Skills.Each(func(_ ecs.EntityID, sk *component.SkillEffect) {
		frames[sk.Frame] = true
	})
	if len(frames) != 1 || !frames[11] {
		t.Fatalf("shared mode frames = %v, want all at 11", frames)
	}

	r.tickIdle(50 * time.Millisecond)
	r.sc.Skills.Each(func(_ ecs.EntityID, sk *component.SkillEffect) {
		if sk.Frame != 12 {
			t.Errorf("shared frame = %d, want 12", sk.Frame)
		}
	})
}

func TestSpawnAndDespawnEventsDeliveredNextTick(t *testing.T) {
	r := newRig(t, waterTemplate(), 0, false)

	var spawned []vmath.Vec3
	var despawned []time.Duration
	event.Subscribe(r.sc.Bus, func(ev event.SkillSpawned) {
		spawned = append(spawned, ev.Position)
	})
	event.Subscribe(r.sc.Bus, func(ev event.SkillDespawned) {
		despawned = append(despawned, ev.Lifetime)
	})

	r.tick(0, skillPress())
	if len(spawned) != 0 {
		t.Fatal("spawn event delivered in the emitting tick")
	}
	r.tickIdle(10 * time.Millisecond)
	if len(spawned) != 1 || spawned[0] != vmath.New(1, 1, 0) {
		t.Fatalf("spawned events = %v", spawned)
	}

	r.tickIdle(3 * time.Second) // expires the effect
	r.tickIdle(0)               // delivers the despawn event
	if len(despawned) != 1 || despawned[0] != 3*time.Second {
		t.Fatalf("despawned events = %v", despawned)
	}
}

func TestAdvanceFrame(t *testing.T) {
	cases := []struct {
		name  string
		frame int
		steps int
		want  int
	}{
		{"no_steps", 5, 0, 5},
		{"single_step", 1, 1, 2},
		{"wrap_skips_reserved", 24, 1, 1},
		{"full_cycle", 1, 24, 1},
		{"multi_wrap", 1, 48, 1},
		{"crossing_wrap_mid_burst", 23, 3, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := advanceFrame(c.frame, c.steps, 25); got != c.want {
				t.Errorf("advanceFrame(%d, %d, 25) = %d, want %d", c.frame, c.steps, got, c.want)
			}
		})
	}
}
