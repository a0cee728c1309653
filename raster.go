package seasons

// Rasterizer draws lines and circles as individual points on a Surface using
// integer-only midpoint algorithms. It is not safe for concurrent use.
type Rasterizer struct {
	surface Surface
}

// NewRasterizer returns a Rasterizer drawing into s.
func NewRasterizer(s Surface) *Rasterizer {
	return &Rasterizer{surface: s}
}

// Surface returns the underlying drawing surface.
func (r *Rasterizer) Surface() Surface { return r.surface }

// SetColor sets the color for subsequent plots.
func (r *Rasterizer) SetColor(c Color) {
	r.surface.SetColor(c)
}

// PlotPoint plots a single pixel in the current color.
func (r *Rasterizer) PlotPoint(x, y int) {
	r.surface.PlotPixel(x, y)
}

// DrawLine plots every pixel on the 8-connected Bresenham path from
// (x1, y1) to (x2, y2), both endpoints included.
func (r *Rasterizer) DrawLine(x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		r.surface.PlotPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawCircle plots the outline of a circle centered at (cx, cy). A radius of
// zero or less plots only the center.
func (r *Rasterizer) DrawCircle(cx, cy, radius int) {
	if radius <= 0 {
		r.surface.PlotPixel(cx, cy)
		return
	}

	x, y := radius, 0
	d := 1 - radius
	for y <= x {
		r.plotOctants(cx, cy, x, y)
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// plotOctants plots (x, y) reflected into all eight octants around (cx, cy).
func (r *Rasterizer) plotOctants(cx, cy, x, y int) {
	s := r.surface
	s.PlotPixel(cx+x, cy+y)
	s.PlotPixel(cx+y, cy+x)
	s.PlotPixel(cx-y, cy+x)
	s.PlotPixel(cx-x, cy+y)
	s.PlotPixel(cx-x, cy-y)
	s.PlotPixel(cx-y, cy-x)
	s.PlotPixel(cx+y, cy-x)
	s.PlotPixel(cx+x, cy-y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
