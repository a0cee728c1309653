package seasons

import (
	"errors"
	"image"
	"testing"
)

func TestFramebufferOriginBottomLeft(t *testing.T) {
	fb, err := NewFramebuffer(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetColor(ColorRed)
	fb.PlotPixel(0, 0)

	// Logical (0,0) is the bottom row of the top-down image.
	img := fb.Image()
	got := img.RGBAAt(0, 2)
	if got != ColorRed.RGBA8() {
		t.Errorf("image bottom-left = %v, want %v", got, ColorRed.RGBA8())
	}
	if img.RGBAAt(0, 0) == ColorRed.RGBA8() {
		t.Error("top-left should not be red")
	}
}

func TestFramebufferClipsOutOfRange(t *testing.T) {
	fb, err := NewFramebuffer(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetColor(ColorWhite)
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {1000, -1000}} {
		fb.PlotPixel(p.X, p.Y) // must not panic
	}
	black := ColorBlack.RGBA8()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := fb.ColorAt(x, y); got != [3]uint8{black.R, black.G, black.B} {
				t.Fatalf("pixel (%d,%d) = %v, want black", x, y, got)
			}
		}
	}
}

func TestFramebufferPointSize(t *testing.T) {
	fb, err := NewFramebuffer(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	fb.PointSize = 2
	fb.SetColor(ColorBlue)
	fb.PlotPixel(4, 4)

	blue := ColorBlue.RGBA8()
	want := [3]uint8{blue.R, blue.G, blue.B}
	for _, p := range []Point{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		if got := fb.ColorAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want blue", p, got)
		}
	}
	if got := fb.ColorAt(6, 4); got == want {
		t.Error("pixel (6,4) should be outside the point")
	}
}

func TestFramebufferClearAndPresent(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetColor(ColorWhite)
	fb.PlotPixel(1, 1)
	fb.Clear()
	if got := fb.ColorAt(1, 1); got != [3]uint8{0, 0, 0} {
		t.Errorf("after Clear pixel = %v, want black", got)
	}

	calls := 0
	fb.OnPresent = func(img *image.RGBA) {
		calls++
		if img != fb.Image() {
			t.Error("OnPresent received a different image")
		}
	}
	fb.Present()
	fb.Present()
	if calls != 2 || fb.Presented() != 2 {
		t.Errorf("present calls = %d, Presented() = %d, want 2 and 2", calls, fb.Presented())
	}
}

func TestNewFramebufferInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewFramebuffer(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewFramebuffer(%d, %d) err = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}
