package seasons

import (
	"time"

	"go.uber.org/zap"
)

// debugLogInterval is the number of frames aggregated into one debug line.
const debugLogInterval = 60

// frameStats accumulates render timings between debug log lines.
// Only populated when Scene.debug is true.
type frameStats struct {
	frames  int
	total   time.Duration
	slowest time.Duration
	weather map[Weather]int
}

func (st *frameStats) record(info FrameInfo) {
	st.frames++
	st.total += info.RenderTime
	if info.RenderTime > st.slowest {
		st.slowest = info.RenderTime
	}
	if info.WeatherActive {
		if st.weather == nil {
			st.weather = make(map[Weather]int, 3)
		}
		st.weather[info.Weather]++
	}
}

func (st *frameStats) mean() time.Duration {
	if st.frames == 0 {
		return 0
	}
	return st.total / time.Duration(st.frames)
}

func (st *frameStats) reset() {
	*st = frameStats{}
}

// debugLog writes the accumulated frame timings and resets them.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	info := s.renderer.LastFrame()
	s.logger.Debug("frame stats",
		zap.Int("frame", s.frameNum),
		zap.Int("frames", s.stats.frames),
		zap.Duration("render_mean", s.stats.mean()),
		zap.Duration("render_max", s.stats.slowest),
		zap.Stringer("season", info.Season),
		zap.Stringer("sky", info.SkyPhase),
		zap.Float64("day_time", s.state.DayTime),
		zap.Any("weather_frames", s.stats.weather),
	)
	s.stats.reset()
}
