package seasons

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the FPS text is recomputed.
const fpsRefresh = 0.5

// fpsOverlay prints the current FPS and TPS in the top-right corner.
type fpsOverlay struct {
	elapsed float64
	label   string
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{elapsed: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image, width int) {
	if o.label == "" {
		return
	}
	// 100px is enough for "FPS: 60.0"
	ebitenutil.DebugPrintAt(screen, o.label, width-100, 4)
}
