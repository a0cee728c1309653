package seasons

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"Spring-Day", "Spring-Day"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := newTestScene(t)
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if len(s.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(s.screenshotQueue))
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" || s.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", s.screenshotQueue)
	}
}

func TestFlushScreenshotsWritesPNG(t *testing.T) {
	s := newTestScene(t)
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.Framebuffer().OnPresent = nil // no GPU upload outside the game loop
	s.Renderer().RenderFrame()

	s.Screenshot("winter night")
	s.flushScreenshots(s.Framebuffer().Image())

	if len(s.screenshotQueue) != 0 {
		t.Errorf("queue not drained: %v", s.screenshotQueue)
	}
	matches, err := filepath.Glob(filepath.Join(s.ScreenshotDir, "*_winter_night.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("found %d screenshots, want 1", len(matches))
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Errorf("screenshot size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestFlushScreenshotsBadDirDrainsQueue(t *testing.T) {
	s := newTestScene(t)
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s.ScreenshotDir = filepath.Join(file, "sub")
	s.Screenshot("x")
	s.flushScreenshots(s.Framebuffer().Image())
	if len(s.screenshotQueue) != 0 {
		t.Error("queue should be drained even when the directory cannot be created")
	}
}
