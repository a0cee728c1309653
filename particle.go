package seasons

import "math/rand/v2"

// Weather identifies a particle system kind.
type Weather uint8

const (
	Rain Weather = iota
	Snow
	Leaves
)

func (w Weather) String() string {
	switch w {
	case Rain:
		return "rain"
	case Snow:
		return "snow"
	case Leaves:
		return "leaves"
	default:
		return "unknown"
	}
}

// WeatherFor reports the weather active in season s. Summer has none.
func WeatherFor(s Season) (Weather, bool) {
	switch s {
	case Spring:
		return Rain, true
	case Fall:
		return Leaves, true
	case Winter:
		return Snow, true
	default:
		return 0, false
	}
}

// spawnBand is the height of the band above the top edge where recycled
// particles re-enter.
const spawnBand = 100

// weatherConfig holds the per-kind motion and drawing rules.
type weatherConfig struct {
	count  int
	color  Color
	fall   IntRange // subtracted from y every tick
	jitter IntRange // added to x every tick
	shape  []Point  // offsets plotted around each particle
}

var weatherConfigs = [...]weatherConfig{
	Rain: {
		count: 100,
		color: ColorBlue,
		fall:  IntRange{30, 30},
		shape: []Point{{0, 0}, {0, -1}, {0, -2}, {0, -3}, {0, -4}},
	},
	Snow: {
		count:  100,
		color:  ColorWhite,
		fall:   IntRange{2, 2},
		jitter: IntRange{-1, 1},
		shape:  []Point{{0, 0}},
	},
	Leaves: {
		count:  50,
		color:  Color{0.8, 0.4, 0.2},
		fall:   IntRange{1, 3},
		jitter: IntRange{-2, 2},
		shape:  []Point{{0, 0}, {0, 2}, {-2, 0}, {0, -2}, {2, 0}},
	},
}

// DefaultCount returns the pool size used for w by NewWeather.
func (w Weather) DefaultCount() int {
	return weatherConfigs[w].count
}

// ParticleSystem animates a fixed pool of weather particles. Particles keep
// their positions across frames and are recycled above the top edge once they
// fall to the ground line.
type ParticleSystem struct {
	kind      Weather
	cfg       weatherConfig
	particles []Point
	rng       *rand.Rand
}

// NewWeather creates a particle system of kind w with its default count.
func NewWeather(w Weather, width, height int, rng *rand.Rand) *ParticleSystem {
	return NewParticleSystem(w, w.DefaultCount(), width, height, rng)
}

// NewParticleSystem creates a pool of count particles scattered uniformly over
// [0,width)×[0,height).
func NewParticleSystem(w Weather, count, width, height int, rng *rand.Rand) *ParticleSystem {
	if count < 0 {
		count = 0
	}
	ps := &ParticleSystem{
		kind:      w,
		cfg:       weatherConfigs[w],
		particles: make([]Point, count),
		rng:       rng,
	}
	for i := range ps.particles {
		ps.particles[i] = Point{X: ps.intn(width), Y: ps.intn(height)}
	}
	return ps
}

// Kind returns the weather kind.
func (ps *ParticleSystem) Kind() Weather { return ps.kind }

// Particles returns the live particle positions. The returned slice MUST NOT
// be mutated.
func (ps *ParticleSystem) Particles() []Point { return ps.particles }

// Update moves every particle one tick and recycles the ones that reached
// y <= 0 to a random spot in [0,width)×[height,height+100).
func (ps *ParticleSystem) Update(width, height int) {
	for i := range ps.particles {
		p := &ps.particles[i]
		p.X += ps.cfg.jitter.Random(ps.rng)
		p.Y -= ps.cfg.fall.Random(ps.rng)
		if p.Y <= 0 {
			p.X = ps.intn(width)
			p.Y = height + ps.intn(spawnBand)
		}
	}
}

// Draw plots every particle in the kind's color and shape.
func (ps *ParticleSystem) Draw(r *Rasterizer) {
	r.SetColor(ps.cfg.color)
	for _, p := range ps.particles {
		for _, o := range ps.cfg.shape {
			r.PlotPoint(p.X+o.X, p.Y+o.Y)
		}
	}
}

// Step advances the simulation one tick and draws the result.
func (ps *ParticleSystem) Step(r *Rasterizer, width, height int) {
	ps.Update(width, height)
	ps.Draw(r)
}

// intn returns a value in [0, n), or 0 when n is not positive.
func (ps *ParticleSystem) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return ps.rng.IntN(n)
}
