package seasons

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectKeyQueuesBoundAction(t *testing.T) {
	s := newTestScene(t)
	s.InjectKey(ebiten.KeyS)
	s.InjectKey(ebiten.KeyZ) // unbound
	s.InjectKey(ebiten.KeyT)
	if s.PendingInjections() != 2 {
		t.Fatalf("pending = %d, want 2", s.PendingInjections())
	}
	if s.injectQueue[0] != ActionCycleSeason || s.injectQueue[1] != ActionCycleSkyPhase {
		t.Errorf("queue = %v", s.injectQueue)
	}
}

func TestInjectedActionsConsumedOnePerTick(t *testing.T) {
	s := newTestScene(t)
	s.InjectAction(ActionCycleSeason)
	s.InjectAction(ActionCycleSeason)
	s.InjectAction(ActionCycleSeason)

	want := []Season{Summer, Fall, Winter}
	for i, w := range want {
		if err := s.Update(); err != nil {
			t.Fatal(err)
		}
		if s.State().Season != w {
			t.Fatalf("tick %d: season = %v, want %v", i, s.State().Season, w)
		}
	}
	if s.PendingInjections() != 0 {
		t.Errorf("pending = %d after draining", s.PendingInjections())
	}
}

func TestInjectedInputSkipsRealKeys(t *testing.T) {
	s := newTestScene(t)
	s.pollKey = func(k ebiten.Key) bool { return k == ebiten.KeyT }
	s.InjectAction(ActionCycleSeason)
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if s.State().Season != Summer || s.State().SkyPhase != Day {
		t.Errorf("state = %v/%v, want Summer/Day", s.State().Season, s.State().SkyPhase)
	}
}
