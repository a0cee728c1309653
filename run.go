package seasons

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the tick rate; zero means DefaultTPS.
	TPS int
}

// Run opens a window and drives scene until the window is closed or the scene
// returns ebiten.Termination. Termination is not reported as an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidSize)
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	scene.tps = tps

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
