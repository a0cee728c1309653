package seasons

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// hudFadeSeconds is how long the label takes to fade out after a change.
const hudFadeSeconds = 2.5

// hud shows the current season and sky phase after each change and fades it
// out with a tween.
type hud struct {
	label string
	alpha float64
	fade  *gween.Tween
	face  text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

func hudLabel(st *State) string {
	return fmt.Sprintf("%s / %s", st.Season, st.SkyPhase)
}

// show replaces the label and restarts the fade from fully opaque.
func (h *hud) show(label string) {
	h.label = label
	h.alpha = 1
	h.fade = gween.New(1, 0, hudFadeSeconds, ease.InCubic)
}

// update advances the fade by dt seconds.
func (h *hud) update(dt float32) {
	if h.fade == nil {
		return
	}
	v, finished := h.fade.Update(dt)
	h.alpha = float64(v)
	if finished {
		h.alpha = 0
		h.fade = nil
	}
}

func (h *hud) visible() bool {
	return h.label != "" && h.alpha > 0
}

func (h *hud) draw(screen *ebiten.Image) {
	if !h.visible() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleAlpha(float32(h.alpha))
	text.Draw(screen, h.label, h.face, op)
}
