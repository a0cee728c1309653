package seasons

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable read by LoadConfig, e.g.
// SEASONS_WIDTH.
const envPrefix = "SEASONS"

// Config holds the startup settings of a Scene and its window. Values are
// read from the environment by LoadConfig; DefaultConfig provides the same
// defaults for programmatic use.
type Config struct {
	Title     string `envconfig:"TITLE" default:"Seasons"`
	Width     int    `envconfig:"WIDTH" default:"800" validate:"gt=0"`
	Height    int    `envconfig:"HEIGHT" default:"600" validate:"gt=0"`
	PointSize int    `envconfig:"POINT_SIZE" default:"2" validate:"gt=0,lte=8"`

	// Seed drives particle motion and foliage stamps. LoadConfig replaces
	// zero with a time-derived seed.
	Seed uint64 `envconfig:"SEED"`

	ShowFPS bool `envconfig:"SHOW_FPS"`
	ShowHUD bool `envconfig:"SHOW_HUD" default:"true"`
	Debug   bool `envconfig:"DEBUG"`

	ScreenshotDir string `envconfig:"SCREENSHOT_DIR" default:"screenshots" validate:"required"`
	// TestScript is an optional path to a JSON test script.
	TestScript string `envconfig:"TEST_SCRIPT"`

	// Key names as reported by ebiten.Key.String, matched case-insensitively.
	SeasonKey     string `envconfig:"SEASON_KEY" default:"S" validate:"required"`
	SkyKey        string `envconfig:"SKY_KEY" default:"T" validate:"required"`
	ScreenshotKey string `envconfig:"SCREENSHOT_KEY" default:"P" validate:"required"`
}

// DefaultConfig returns the configuration used when no environment overrides
// are present, with a fixed zero seed.
func DefaultConfig() Config {
	return Config{
		Title:         "Seasons",
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		PointSize:     2,
		ShowHUD:       true,
		ScreenshotDir: "screenshots",
		SeasonKey:     "S",
		SkyKey:        "T",
		ScreenshotKey: "P",
	}
}

// LoadConfig reads a .env file if one exists, then SEASONS_* environment
// variables, and validates the result. Existing environment variables take
// precedence over .env entries.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks sizes, required fields and key names.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.keyMap(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// KeyMap returns the key bindings described by the config. Bindings with
// unknown key names are skipped; Validate reports them.
func (c Config) KeyMap() []KeyBinding {
	bindings, _ := c.keyMap()
	return bindings
}

func (c Config) keyMap() ([]KeyBinding, error) {
	named := []struct {
		name   string
		action KeyAction
	}{
		{c.SeasonKey, ActionCycleSeason},
		{c.SkyKey, ActionCycleSkyPhase},
		{c.ScreenshotKey, ActionScreenshot},
	}
	var (
		bindings []KeyBinding
		errs     []error
	)
	for _, n := range named {
		key, err := ParseKey(n.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s binding: %w", n.action, err))
			continue
		}
		bindings = append(bindings, KeyBinding{Key: key, Action: n.action})
	}
	return bindings, errors.Join(errs...)
}

// ParseKey returns the ebiten key whose name matches name, ignoring case.
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// RunConfig returns the window settings for Run.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
	}
}
