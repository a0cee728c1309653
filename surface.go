package seasons

import (
	"fmt"
	"image"
	"image/draw"
)

// Surface is the minimal drawing target the rasterizer writes into. It owns
// the pixels and the presentation step; everything above it only decides
// what to draw.
type Surface interface {
	SetColor(c Color)
	PlotPixel(x, y int)
	Clear()
	Present()
}

// Framebuffer is a CPU-side Surface backed by an *image.RGBA. Logical
// coordinates have their origin at the bottom-left corner; the backing image
// is stored top-down, so row = Height-1-y.
type Framebuffer struct {
	// PointSize is the edge length in pixels of the square stamped for each
	// plotted point. Values below 1 behave as 1.
	PointSize int

	// ClearColor is written to every pixel by Clear.
	ClearColor Color

	// OnPresent, when set, is called from Present with the finished frame.
	OnPresent func(img *image.RGBA)

	img       *image.RGBA
	current   [4]uint8
	presented int
}

// NewFramebuffer allocates a width×height framebuffer cleared to black.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new framebuffer %dx%d: %w", width, height, ErrInvalidSize)
	}
	fb := &Framebuffer{
		PointSize:  1,
		ClearColor: ColorBlack,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	fb.SetColor(ColorWhite)
	fb.Clear()
	return fb, nil
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.img.Rect.Dx() }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.img.Rect.Dy() }

// Image returns the backing image. The returned image MUST NOT be retained
// across frames if it is going to be mutated.
func (fb *Framebuffer) Image() *image.RGBA { return fb.img }

// Presented returns how many frames have been presented.
func (fb *Framebuffer) Presented() int { return fb.presented }

// SetColor sets the color used by subsequent PlotPixel calls.
func (fb *Framebuffer) SetColor(c Color) {
	rgba := c.RGBA8()
	fb.current = [4]uint8{rgba.R, rgba.G, rgba.B, rgba.A}
}

// PlotPixel writes the current color at logical (x, y). Pixels outside the
// framebuffer are clipped.
func (fb *Framebuffer) PlotPixel(x, y int) {
	size := fb.PointSize
	if size <= 1 {
		fb.set(x, y)
		return
	}
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			fb.set(x+dx, y+dy)
		}
	}
}

func (fb *Framebuffer) set(x, y int) {
	w, h := fb.img.Rect.Dx(), fb.img.Rect.Dy()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := fb.img.PixOffset(x, h-1-y)
	pix := fb.img.Pix[i : i+4 : i+4]
	pix[0] = fb.current[0]
	pix[1] = fb.current[1]
	pix[2] = fb.current[2]
	pix[3] = fb.current[3]
}

// Clear fills the framebuffer with ClearColor.
func (fb *Framebuffer) Clear() {
	draw.Draw(fb.img, fb.img.Rect, image.NewUniform(fb.ClearColor.RGBA8()), image.Point{}, draw.Src)
}

// Present marks the frame complete and hands it to OnPresent.
func (fb *Framebuffer) Present() {
	fb.presented++
	if fb.OnPresent != nil {
		fb.OnPresent(fb.img)
	}
}

// ColorAt returns the 8-bit color stored at logical (x, y). Out-of-range
// coordinates report the clear color.
func (fb *Framebuffer) ColorAt(x, y int) [3]uint8 {
	w, h := fb.img.Rect.Dx(), fb.img.Rect.Dy()
	if x < 0 || y < 0 || x >= w || y >= h {
		c := fb.ClearColor.RGBA8()
		return [3]uint8{c.R, c.G, c.B}
	}
	i := fb.img.PixOffset(x, h-1-y)
	return [3]uint8{fb.img.Pix[i], fb.img.Pix[i+1], fb.img.Pix[i+2]}
}
