// Package astropal answers "what is up in the sky right now, and when does
// the Sun rise and set?" for an observer on the Earth.
//
// The engine is a small set of pure functions layered on an
// ephemeris.Source:
//
//   - NewFrame binds an observer position to an instant.
//   - Observe projects a catalog.Target into altitude and azimuth.
//   - Classify and TwilightAt turn altitudes into visibility and
//     day/twilight/night states.
//   - FindSunEvents searches a time window for sunrise and sunset.
//   - MoonPhaseAt derives the lunar phase from the Sun and Moon positions.
//
// Engine bundles a Source with a Config for callers that want the
// configured thresholds applied for them. Nothing in the package logs,
// caches positions or resolves place names.
package astropal

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/astropal/ephemeris"
)

var (
	// ErrInvalidPosition is returned for coordinates outside their ranges.
	ErrInvalidPosition = errors.New("invalid observer position")

	// ErrEphemerisUnavailable is returned when the ephemeris cannot place
	// a target. It wraps the Source's error (usually ephemeris.ErrUnknownBody).
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	// ErrInvalidWindow is returned for a TimeWindow that ends before it starts.
	ErrInvalidWindow = errors.New("invalid time window")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat       float64 // degrees, north positive
	Lon       float64 // degrees, east positive (west negative, e.g. -123 for 123°W)
	Elevation float64 // meters above sea level
}

// Validate reports ErrInvalidPosition for out of range or NaN fields.
func (c Coordinates) Validate() error {
	switch {
	case math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90:
		return fmt.Errorf("%w: latitude %v outside [-90,90]", ErrInvalidPosition, c.Lat)
	case math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180:
		return fmt.Errorf("%w: longitude %v outside [-180,180]", ErrInvalidPosition, c.Lon)
	case math.IsNaN(c.Elevation) || c.Elevation < 0:
		return fmt.Errorf("%w: elevation %v is negative", ErrInvalidPosition, c.Elevation)
	}
	return nil
}

// TimeWindow bounds an event search. Start and End are inclusive.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the 24 hours starting at t.
func DayWindow(t time.Time) TimeWindow {
	return TimeWindow{Start: t, End: t.Add(24 * time.Hour)}
}

// Validate reports ErrInvalidWindow when End is before Start.
func (w TimeWindow) Validate() error {
	if w.End.Before(w.Start) {
		return fmt.Errorf("%w: end %v before start %v", ErrInvalidWindow, w.End, w.Start)
	}
	return nil
}

// Config holds the engine's tunable thresholds.
type Config struct {
	// AltitudeThreshold is the altitude in degrees a target must exceed to
	// count as visible.
	AltitudeThreshold float64
	// SampleStep is the sampling interval for event searches.
	SampleStep time.Duration
	// Tolerance is the precision to which event times are refined.
	Tolerance time.Duration
}

// DefaultConfig returns the thresholds the engine was designed around:
// visible above 20°, sampled every 10 minutes, refined to 15 seconds.
func DefaultConfig() Config {
	return Config{
		AltitudeThreshold: 20,
		SampleStep:        10 * time.Minute,
		Tolerance:         15 * time.Second,
	}
}

// Validate checks that the thresholds are usable.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.AltitudeThreshold) || c.AltitudeThreshold < -90 || c.AltitudeThreshold > 90:
		return fmt.Errorf("%w: altitude threshold %v outside [-90,90]", ErrInvalidConfig, c.AltitudeThreshold)
	case c.SampleStep <= 0 || c.SampleStep > 2*time.Hour:
		return fmt.Errorf("%w: sample step %v must be in (0, 2h]", ErrInvalidConfig, c.SampleStep)
	case c.Tolerance <= 0 || c.Tolerance >= c.SampleStep:
		return fmt.Errorf("%w: tolerance %v must be positive and below the sample step", ErrInvalidConfig, c.Tolerance)
	}
	return nil
}

// Engine applies a Config to the package functions over a shared Source.
// It is safe for concurrent use when the Source is.
type Engine struct {
	src ephemeris.Source
	cfg Config
}

// NewEngine validates cfg and returns an Engine reading from src.
func NewEngine(src ephemeris.Source, cfg Config) (*Engine, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil ephemeris source", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{src: src, cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
