package seasons

import "time"

// Season selects ground color, active weather and tree foliage.
type Season uint8

const (
	Spring Season = iota
	Summer
	Fall
	Winter

	seasonCount = 4
)

var seasonNames = [seasonCount]string{"Spring", "Summer", "Fall", "Winter"}

func (s Season) String() string {
	return seasonNames[s%seasonCount]
}

// Next returns the season that follows s, wrapping Winter back to Spring.
func (s Season) Next() Season {
	return (s + 1) % seasonCount
}

// SkyPhase selects the sky color and which celestial bodies are visible.
// It cycles independently of the time-of-day clock.
type SkyPhase uint8

const (
	Night SkyPhase = iota
	Dawn
	Day
	Dusk

	skyPhaseCount = 4
)

var skyPhaseNames = [skyPhaseCount]string{"Night", "Dawn", "Day", "Dusk"}

func (p SkyPhase) String() string {
	return skyPhaseNames[p%skyPhaseCount]
}

// Next returns the phase that follows p, wrapping Dusk back to Night.
func (p SkyPhase) Next() SkyPhase {
	return (p + 1) % skyPhaseCount
}

// KeyAction is a scene command produced by a key press.
type KeyAction uint8

const (
	ActionNone KeyAction = iota
	ActionCycleSeason
	ActionCycleSkyPhase
	ActionScreenshot
)

func (a KeyAction) String() string {
	switch a {
	case ActionCycleSeason:
		return "cycle-season"
	case ActionCycleSkyPhase:
		return "cycle-sky"
	case ActionScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// dayRate is the fraction of a day that passes per elapsed second, giving a
// full cycle every 10 seconds.
const dayRate = 0.1

// State is the mutable scene model: two independent cyclic enumerations and
// a wrapping time-of-day clock.
type State struct {
	Season   Season
	SkyPhase SkyPhase
	// DayTime is the time of day in [0, 1).
	DayTime float64
	// LastUpdate is the wall-clock time of the previous Tick. Zero until the
	// first Tick.
	LastUpdate time.Time
}

// NewState returns the startup state: Spring, Day, DayTime 0.
func NewState() *State {
	return &State{Season: Spring, SkyPhase: Day}
}

// AdvanceTime moves the clock forward by elapsed seconds. The clock resets to
// zero once it reaches a full day.
func (st *State) AdvanceTime(elapsed float64) {
	st.DayTime += elapsed * dayRate
	if st.DayTime >= 1.0 {
		st.DayTime = 0
	}
}

// Tick advances the clock by the wall-clock time since the previous Tick and
// records now. The first Tick only records now.
func (st *State) Tick(now time.Time) {
	if !st.LastUpdate.IsZero() {
		if elapsed := now.Sub(st.LastUpdate).Seconds(); elapsed > 0 {
			st.AdvanceTime(elapsed)
		}
	}
	st.LastUpdate = now
}

// CycleSeason advances to the next season.
func (st *State) CycleSeason() {
	st.Season = st.Season.Next()
}

// CycleSkyPhase advances to the next sky phase.
func (st *State) CycleSkyPhase() {
	st.SkyPhase = st.SkyPhase.Next()
}

// HandleKey applies a season or sky action and reports whether the state
// changed. Other actions are ignored.
func (st *State) HandleKey(action KeyAction) bool {
	switch action {
	case ActionCycleSeason:
		st.CycleSeason()
	case ActionCycleSkyPhase:
		st.CycleSkyPhase()
	default:
		return false
	}
	return true
}
