package seasons

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// DefaultTPS is the update rate of the driver loop (about one tick every
// 16ms).
const DefaultTPS = 60

// Scene is the top-level object that owns the scene state, the renderer, the
// CPU framebuffer and the per-frame driver plumbing (keys, HUD, screenshots,
// scripted input). It implements ebiten.Game.
type Scene struct {
	state    *State
	renderer *Renderer
	fb       *Framebuffer
	frame    *ebiten.Image
	width    int
	height   int
	tps      int

	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir string
	// ExitOnDone stops the game loop once an attached TestRunner finishes
	// and its screenshots are written.
	ExitOnDone bool

	keys     []KeyBinding
	pollKey  func(ebiten.Key) bool
	now      func() time.Time
	logger   *zap.Logger
	debug    bool
	hud      *hud
	showHUD  bool
	fps      *fpsOverlay
	frameNum int
	stats    frameStats

	injectQueue     []KeyAction
	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error
}

// NewScene builds a scene from cfg: a framebuffer of cfg.Width×cfg.Height,
// the startup State and a renderer seeded with cfg.Seed.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fb, err := NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	fb.PointSize = cfg.PointSize

	state := NewState()
	s := &Scene{
		state:         state,
		renderer:      NewRenderer(fb, cfg.Width, cfg.Height, state, NewRand(cfg.Seed)),
		fb:            fb,
		width:         cfg.Width,
		height:        cfg.Height,
		tps:           DefaultTPS,
		ScreenshotDir: cfg.ScreenshotDir,
		keys:          cfg.KeyMap(),
		pollKey:       justPressed,
		now:           time.Now,
		logger:        zap.NewNop(),
		debug:         cfg.Debug,
		hud:           newHUD(),
		showHUD:       cfg.ShowHUD,
	}
	if cfg.ShowFPS {
		s.fps = newFPSOverlay()
	}
	fb.OnPresent = s.upload
	return s, nil
}

// State returns the scene state.
func (s *Scene) State() *State { return s.state }

// Renderer returns the frame renderer.
func (s *Scene) Renderer() *Renderer { return s.renderer }

// Framebuffer returns the CPU framebuffer frames are rendered into.
func (s *Scene) Framebuffer() *Framebuffer { return s.fb }

// SetLogger replaces the scene logger. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// SetClock replaces the wall clock used to advance the time of day.
func (s *Scene) SetClock(now func() time.Time) {
	s.now = now
}

// SetUpdateFunc registers a callback run at the end of every Update. A
// non-nil error (including ebiten.Termination) stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables periodic frame timing logs.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances one tick: scripted steps, key dispatch, the time-of-day
// clock and overlays.
func (s *Scene) Update() error {
	dt := 1.0 / float64(s.tps)

	if s.testRunner != nil {
		s.testRunner.step(s)
		if s.ExitOnDone && s.testRunner.Done() && len(s.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}

	s.processInput()
	s.state.Tick(s.now())
	s.hud.update(float32(dt))
	if s.fps != nil {
		s.fps.update(dt)
	}

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw renders a frame into the framebuffer, copies it to screen and draws
// the overlays on top.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.renderer.RenderFrame()
	if s.frame != nil {
		screen.DrawImage(s.frame, nil)
	}
	if s.showHUD {
		s.hud.draw(screen)
	}
	if s.fps != nil {
		s.fps.draw(screen, s.width)
	}

	s.flushScreenshots(s.fb.Image())

	s.frameNum++
	if s.debug {
		s.stats.record(s.renderer.LastFrame())
		if s.frameNum%debugLogInterval == 0 {
			s.debugLog()
		}
	}
}

// Layout reports the fixed logical size; ebiten scales it to the window.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// upload copies a presented frame into the GPU image drawn by Draw.
func (s *Scene) upload(img *image.RGBA) {
	if s.frame == nil {
		s.frame = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	s.frame.WritePixels(img.Pix)
}

// dispatch applies a key action to the scene.
func (s *Scene) dispatch(action KeyAction) {
	switch action {
	case ActionNone:
		return
	case ActionScreenshot:
		s.Screenshot(fmt.Sprintf("%s-%s", s.state.Season, s.state.SkyPhase))
	default:
		if !s.state.HandleKey(action) {
			return
		}
		s.hud.show(hudLabel(s.state))
	}
	s.logger.Debug("key action",
		zap.Stringer("action", action),
		zap.Stringer("season", s.state.Season),
		zap.Stringer("sky", s.state.SkyPhase),
	)
}
