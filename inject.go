package seasons

import "github.com/hajimehoshi/ebiten/v2"

// InjectAction queues a synthetic scene action. Queued actions are consumed
// one per tick by processInput, exactly like a real key press.
func (s *Scene) InjectAction(action KeyAction) {
	s.injectQueue = append(s.injectQueue, action)
}

// InjectKey queues the action bound to key. Unbound keys are dropped, the
// same as pressing them.
func (s *Scene) InjectKey(key ebiten.Key) {
	if a := s.actionForKey(key); a != ActionNone {
		s.InjectAction(a)
	}
}

// PendingInjections returns the number of queued synthetic actions.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued action and dispatches it. Returns true
// if an action was consumed (real keys are skipped this tick).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	action := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.dispatch(action)
	return true
}
