package seasons

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"time"
)

var skyColors = [skyPhaseCount]Color{
	Night: {0.0, 0.0, 0.1},
	Dawn:  {0.9, 0.6, 0.8},
	Day:   {0.4, 0.6, 1.0},
	Dusk:  {0.5, 0.3, 0.4},
}

var groundColors = [seasonCount]Color{
	Spring: {0.1, 0.5, 0.1},
	Summer: {0.2, 0.8, 0.2},
	Fall:   {0.8, 0.4, 0.2},
	Winter: {1.0, 1.0, 1.0},
}

// SkyColor returns the sky fill color for phase p.
func SkyColor(p SkyPhase) Color { return skyColors[p%skyPhaseCount] }

// GroundColor returns the ground fill color for season s.
func GroundColor(s Season) Color { return groundColors[s%seasonCount] }

const (
	fillStride  = 2
	starCount   = 100
	sunRadius   = 30
	moonRadius  = 20
	sunArc      = 200
	moonShade   = 0.9
	starXFactor = 123
	starYFactor = 456
)

// FrameInfo summarizes what the last RenderFrame drew.
type FrameInfo struct {
	Season      Season
	SkyPhase    SkyPhase
	SkyColor    Color
	GroundColor Color
	LeafColor   Color
	Stars       bool
	Sun         bool
	Moon        bool
	// Weather is valid only when WeatherActive is true.
	Weather       Weather
	WeatherActive bool
	// Body is the sun/moon center, whether or not either was drawn.
	Body       Point
	RenderTime time.Duration
}

// Renderer composes the rasterizer, scene state and weather systems into
// full frames. It owns its particle systems; the state is shared with
// whoever dispatches key events.
type Renderer struct {
	width, height int
	state         *State
	surface       Surface
	raster        *Rasterizer
	rng           *rand.Rand
	weather       [3]*ParticleSystem
	stars         []Point
	last          FrameInfo
}

// NewRenderer creates a renderer for a width×height logical area drawing into
// surface. rng drives particle motion and foliage stamps.
func NewRenderer(surface Surface, width, height int, state *State, rng *rand.Rand) *Renderer {
	rd := &Renderer{
		width:   width,
		height:  height,
		state:   state,
		surface: surface,
		raster:  NewRasterizer(surface),
		rng:     rng,
		stars:   starField(width, height),
	}
	for _, w := range []Weather{Rain, Snow, Leaves} {
		rd.weather[w] = NewWeather(w, width, height, rng)
	}
	return rd
}

// State returns the scene state the renderer reads.
func (rd *Renderer) State() *State { return rd.state }

// Rasterizer returns the rasterizer bound to the renderer's surface.
func (rd *Renderer) Rasterizer() *Rasterizer { return rd.raster }

// Weather returns the particle system for w.
func (rd *Renderer) Weather(w Weather) *ParticleSystem { return rd.weather[w] }

// LastFrame returns the summary of the most recent RenderFrame.
func (rd *Renderer) LastFrame() FrameInfo { return rd.last }

// Size returns the logical drawing area.
func (rd *Renderer) Size() (width, height int) { return rd.width, rd.height }

// RenderFrame draws one complete frame and presents it. Later layers occlude
// earlier ones.
func (rd *Renderer) RenderFrame() {
	start := time.Now()
	st := rd.state
	info := FrameInfo{
		Season:      st.Season,
		SkyPhase:    st.SkyPhase,
		SkyColor:    SkyColor(st.SkyPhase),
		GroundColor: GroundColor(st.Season),
		LeafColor:   FoliageColor(st.Season),
		Body:        bodyPosition(rd.width, rd.height, st.DayTime),
	}

	rd.surface.Clear()

	band := rd.height / 3
	rd.fill(info.SkyColor, band, rd.height, fillStride)

	if st.SkyPhase == Night || st.SkyPhase == Dusk {
		info.Stars = true
		rd.raster.SetColor(ColorWhite)
		for _, p := range rd.stars {
			rd.raster.PlotPoint(p.X, p.Y)
		}
	}

	if (st.SkyPhase == Dawn || st.SkyPhase == Day) && st.Season != Spring {
		info.Sun = true
		rd.raster.SetColor(ColorYellow)
		rd.raster.DrawCircle(info.Body.X, info.Body.Y, sunRadius)
	}

	if st.SkyPhase == Night {
		info.Moon = true
		rd.raster.SetColor(Color{moonShade, moonShade, moonShade})
		rd.raster.DrawCircle(info.Body.X, info.Body.Y, moonRadius)
	}

	rd.fill(info.GroundColor, 0, band, fillStride)

	if w, ok := WeatherFor(st.Season); ok {
		info.Weather, info.WeatherActive = w, true
		rd.weather[w].Step(rd.raster, rd.width, rd.height)
	}

	rd.drawHouse()
	rd.drawTree(info.LeafColor)

	rd.surface.Present()

	info.RenderTime = time.Since(start)
	rd.last = info
}

// fill approximates a filled band [y0, y1) by plotting every stride-th pixel
// in both axes.
func (rd *Renderer) fill(c Color, y0, y1, stride int) {
	rd.raster.SetColor(c)
	for y := y0; y < y1; y += stride {
		for x := 0; x < rd.width; x += stride {
			rd.raster.PlotPoint(x, y)
		}
	}
}

// bodyPosition returns the sun/moon center for time of day t.
func bodyPosition(width, height int, t float64) Point {
	return Point{
		X: int(float64(width) * t),
		Y: int(float64(height)/2 + math.Sin(t*math.Pi)*sunArc),
	}
}

// starField returns fixed star positions in the sky band. Positions depend
// only on the index and the drawing area, so stars do not twinkle between
// frames or runs.
func starField(width, height int) []Point {
	band := height / 3
	span := height - band
	if width <= 0 || span <= 0 {
		return nil
	}
	stars := make([]Point, starCount)
	for i := range stars {
		stars[i] = Point{
			X: int(hashIndex(i*starXFactor) % uint32(width)),
			Y: int(hashIndex(i*starYFactor)%uint32(span)) + band,
		}
	}
	return stars
}

func hashIndex(v int) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.Itoa(v)))
	return h.Sum32()
}
