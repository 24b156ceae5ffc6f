// Package input defines the per-tick input snapshot the host hands to the
// simulation. Held keys drive continuous movement; pressed keys are
// edge-triggered and valid for a single tick.
package input

// Key identifies one logical input. Names follow the original key binding:
// WASDQE camera translation, arrows camera rotation, IJKL avatar movement,
// skill for the effect trigger.
type Key string

const (
	KeySkill Key = "skill"

	KeyW Key = "w"
	KeyA Key = "a"
	KeyS Key = "s"
	KeyD Key = "d"
	KeyQ Key = "q"
	KeyE Key = "e"

	KeyI Key = "i"
	KeyJ Key = "j"
	KeyK Key = "k"
	KeyL Key = "l"

	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
)

// Lookup maps a host token to a known key.
func Lookup(tok string) (Key, bool) {
	switch Key(tok) {
	case KeySkill, KeyW, KeyA, KeyS, KeyD, KeyQ, KeyE,
		KeyI, KeyJ, KeyK, KeyL, KeyLeft, KeyRight, KeyUp, KeyDown:
		return Key(tok), true
	}
	return "", false
}

// Snapshot is the raw input state for one tick.
type Snapshot struct {
	held    map[Key]bool
	pressed map[Key]bool
}

func NewSnapshot() Snapshot {
	return Snapshot{
		held:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// Hold marks a key as held for this tick.
func (s Snapshot) Hold(k Key) {
	s.held[k] = true
}

// Press marks an edge-triggered key press for this tick. A pressed key is
// also held.
func (s Snapshot) Press(k Key) {
	s.pressed[k] = true
	s.held[k] = true
}

func (s Snapshot) Held(k Key) bool {
	return s.held[k]
}

func (s Snapshot) Pressed(k Key) bool {
	return s.pressed[k]
}

// State holds the current tick's snapshot for systems to read. The input
// system overwrites it at the top of every tick.
type State struct {
	current Snapshot
}

func NewState() *State {
	return &State{current: NewSnapshot()}
}

func (s *State) Set(snap Snapshot) {
	s.current = snap
}

func (s *State) Current() Snapshot {
	return s.current
}
