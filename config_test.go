package seasons

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -600 }},
		{"zero point size", func(c *Config) { c.PointSize = 0 }},
		{"huge point size", func(c *Config) { c.PointSize = 64 }},
		{"no screenshot dir", func(c *Config) { c.ScreenshotDir = "" }},
		{"unknown key", func(c *Config) { c.SkyKey = "NoSuchKey" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SEASONS_WIDTH", "640")
	t.Setenv("SEASONS_HEIGHT", "480")
	t.Setenv("SEASONS_SEED", "99")
	t.Setenv("SEASONS_SHOW_HUD", "false")
	t.Setenv("SEASONS_SEASON_KEY", "q")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.ShowHUD {
		t.Error("ShowHUD should be false")
	}
	if cfg.PointSize != 2 || cfg.ScreenshotDir != "screenshots" || cfg.Title != "Seasons" {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	keys := cfg.KeyMap()
	if len(keys) != 3 {
		t.Fatalf("KeyMap len = %d, want 3", len(keys))
	}
	if keys[0].Key != ebiten.KeyQ || keys[0].Action != ActionCycleSeason {
		t.Errorf("season binding = %+v, want Q", keys[0])
	}
	if keys[1].Key != ebiten.KeyT || keys[2].Key != ebiten.KeyP {
		t.Errorf("default bindings = %+v", keys[1:])
	}
}

func TestLoadConfigRandomSeed(t *testing.T) {
	t.Setenv("SEASONS_SEED", "0")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("SEASONS_WIDTH", "wide")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"S", ebiten.KeyS},
		{"s", ebiten.KeyS},
		{"Space", ebiten.KeySpace},
		{"F1", ebiten.KeyF1},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseKey("Banana"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestRunConfigFromConfig(t *testing.T) {
	rc := DefaultConfig().RunConfig()
	if rc.Title != "Seasons" || rc.Width != DefaultWidth || rc.Height != DefaultHeight {
		t.Errorf("RunConfig = %+v", rc)
	}
}
