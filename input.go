package seasons

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBinding maps a physical key to a scene action.
type KeyBinding struct {
	Key    ebiten.Key
	Action KeyAction
}

// SetKeyMap replaces the key bindings. Keys not present are ignored.
func (s *Scene) SetKeyMap(bindings []KeyBinding) {
	s.keys = append(s.keys[:0:0], bindings...)
}

// justPressed reports whether key went down this tick.
func justPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// processInput is called from Scene.Update. A pending injected action is
// consumed instead of polling the keyboard, one per tick.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	for _, b := range s.keys {
		if s.pollKey(b.Key) {
			s.dispatch(b.Action)
		}
	}
}

// actionForKey returns the action bound to key, or ActionNone.
func (s *Scene) actionForKey(key ebiten.Key) KeyAction {
	for _, b := range s.keys {
		if b.Key == key {
			return b.Action
		}
	}
	return ActionNone
}
