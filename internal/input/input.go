// Package input bridges SDL2 keyboard events to the joypad's button
// state, following the KeyMapping abstraction the teacher's
// internal/input/input.go built for an abstract Key enum, but mapping
// directly to sdl.Keycode since internal/display already depends on SDL2.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ernesto27/gbcore/internal/joypad"
)

// KeyMap associates SDL keycodes with Game Boy buttons.
type KeyMap map[sdl.Keycode]joypad.Button

// DefaultKeyMap maps the arrow keys to the D-pad, Z/X to A/B, Return to
// Start, and Right Shift or Backspace to Select.
var DefaultKeyMap = KeyMap{
	sdl.K_UP:     joypad.Up,
	sdl.K_DOWN:   joypad.Down,
	sdl.K_LEFT:   joypad.Left,
	sdl.K_RIGHT:  joypad.Right,
	sdl.K_z:      joypad.A,
	sdl.K_x:      joypad.B,
	sdl.K_RETURN: joypad.Start,
	sdl.K_RSHIFT: joypad.Select,
	sdl.K_BACKSPACE: joypad.Select,
}

// Manager translates SDL2 keyboard events into joypad Press/Release calls.
type Manager struct {
	joypad *joypad.Joypad
	keyMap KeyMap
}

// NewManager creates an input manager bound to a joypad using DefaultKeyMap.
func NewManager(j *joypad.Joypad) *Manager {
	return &Manager{joypad: j, keyMap: DefaultKeyMap}
}

// SetKeyMap replaces the active keyboard mapping.
func (m *Manager) SetKeyMap(keyMap KeyMap) { m.keyMap = keyMap }

// HandleKeyboardEvent applies one SDL2 keyboard event to the joypad,
// reporting whether the key was recognized.
func (m *Manager) HandleKeyboardEvent(e *sdl.KeyboardEvent) bool {
	button, ok := m.keyMap[e.Keysym.Sym]
	if !ok {
		return false
	}
	switch e.Type {
	case sdl.KEYDOWN:
		m.joypad.Press(button)
	case sdl.KEYUP:
		m.joypad.Release(button)
	}
	return true
}

// PollAndApply drains the SDL2 event queue, applying keyboard events to the
// joypad and reporting whether the user requested the window be closed.
func (m *Manager) PollAndApply() (quit bool) {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return quit
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			m.HandleKeyboardEvent(e)
		}
	}
}
