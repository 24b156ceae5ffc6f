package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/waterfx/scene/internal/config"
	"github.com/waterfx/scene/internal/core/event"
	coresys "github.com/waterfx/scene/internal/core/system"
	"github.com/waterfx/scene/internal/data"
	"github.com/waterfx/scene/internal/input"
	"github.com/waterfx/scene/internal/scene"
	"github.com/waterfx/scene/internal/scripting"
	"github.com/waterfx/scene/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/scene.toml"
	if p := os.Getenv("WATERFX_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load effect templates
	effects, err := data.LoadEffectTable(cfg.Scene.EffectsPath)
	if err != nil {
		return fmt.Errorf("load effects: %w", err)
	}
	tmpl := effects.Get(cfg.Skill.Effect)
	if tmpl == nil {
		return fmt.Errorf("effect template %q not found in %s", cfg.Skill.Effect, cfg.Scene.EffectsPath)
	}
	log.Info("effect templates loaded",
		zap.Int("count", effects.Count()),
		zap.String("active", tmpl.ID))

	// 4. Init Lua hooks
	lua, err := scripting.NewEngine(cfg.Scene.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer lua.Close()

	// 5. Build the scene and wire events to the hooks
	sc := scene.New(cfg)
	event.Subscribe(sc.Bus, func(ev event.SkillSpawned) {
		lua.OnSkillSpawned(ev.Position)
	})
	event.Subscribe(sc.Bus, func(ev event.SkillDespawned) {
		lua.OnSkillDespawned(ev.Lifetime)
	})

	// 6. Register systems. Spawn precedes animation precedes reaping; the
	// runner's phase order plus stable registration order guarantees it.
	state := input.NewState()
	src := newStdinSource()
	anim, err := system.NewAnimationSystem(sc, tmpl, cfg.Skill.SharedFrame)
	if err != nil {
		return fmt.Errorf("animation system: %w", err)
	}

	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(src, state))
	runner.Register(system.NewEventDispatchSystem(sc.Bus))
	runner.Register(system.NewSpawnSystem(sc, state, tmpl, cfg.Skill.MaxLive, log))
	runner.Register(system.NewMovementSystem(sc, state, cfg.Avatar.Speed))
	runner.Register(system.NewCameraSystem(sc, state, cfg.Camera.Speed, cfg.Camera.RotateSpeed))
	runner.Register(anim)
	runner.Register(system.NewLifetimeSystem(sc, log))
	runner.Register(system.NewDebugSystem(sc, log))
	runner.Register(system.NewCleanupSystem(sc.World))

	// 7. Tick loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Scene.TickRate)
	defer ticker.Stop()

	log.Info("scene loop started",
		zap.Duration("tick", cfg.Scene.TickRate),
		zap.Bool("shared_frame", cfg.Skill.SharedFrame))
	fmt.Println(`commands: "skill" spawns an effect, w/a/s/d/q/e fly the camera,`)
	fmt.Println(`i/j/k/l move the avatar, left/right/up/down rotate, "quit" exits`)

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Scene.TickRate)
		case <-src.Done():
			log.Info("quit requested, stopping")
			return nil
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// stdinSource turns stdin lines into per-tick input snapshots. Keys named
// on a line are held for exactly one tick; "skill" is an edge-triggered
// press. "quit" closes the done channel.
type stdinSource struct {
	lines chan string
	done  chan struct{}
}

func newStdinSource() *stdinSource {
	s := &stdinSource{
		lines: make(chan string, 64),
		done:  make(chan struct{}),
	}
	go s.readLoop()
	return s
}

func (s *stdinSource) readLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			close(s.done)
			return
		}
		select {
		case s.lines <- line:
		default:
			// Tick loop is behind; drop rather than block stdin.
		}
	}
}

func (s *stdinSource) Done() <-chan struct{} {
	return s.done
}

// Poll drains all pending lines into one snapshot.
func (s *stdinSource) Poll() input.Snapshot {
	snap := input.NewSnapshot()
	for {
		select {
		case line := <-s.lines:
			applyLine(snap, line)
		default:
			return snap
		}
	}
}

func applyLine(snap input.Snapshot, line string) {
	for _, tok := range strings.Fields(line) {
		if tok == "space" {
			tok = string(input.KeySkill)
		}
		key, ok := input.Lookup(tok)
		if !ok {
			continue
		}
		if key == input.KeySkill {
			snap.Press(key)
			continue
		}
		snap.Hold(key)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
