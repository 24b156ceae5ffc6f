// Package scripting hosts a gopher-lua VM for scene hooks. Scripts may
// define on_skill_spawned(x, y, z) and on_skill_despawned(lifetime_secs);
// missing hooks are simply skipped.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/waterfx/scene/internal/core/vmath"
)

// Engine wraps a single Lua VM. Single-goroutine access only (tick loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory is not an error; the engine just has no
// hooks.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// OnSkillSpawned calls the on_skill_spawned hook, if defined.
func (e *Engine) OnSkillSpawned(pos vmath.Vec3) {
	e.call("on_skill_spawned",
		lua.LNumber(pos.X), lua.LNumber(pos.Y), lua.LNumber(pos.Z))
}

// OnSkillDespawned calls the on_skill_despawned hook, if defined.
func (e *Engine) OnSkillDespawned(lifetime time.Duration) {
	e.call("on_skill_despawned", lua.LNumber(lifetime.Seconds()))
}

func (e *Engine) call(name string, args ...lua.LValue) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return
	}
	err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		e.log.Warn("lua hook failed", zap.String("hook", name), zap.Error(err))
	}
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}
