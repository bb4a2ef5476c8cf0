package astropal

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/astropal/ephemeris"
	"github.com/thurmanmarka/astropal/internal/solver"
)

// EventKind identifies a horizon crossing.
type EventKind int

const (
	Sunrise EventKind = iota
	Sunset
	Dawn
	Dusk
)

func (k EventKind) String() string {
	switch k {
	case Sunrise:
		return "sunrise"
	case Sunset:
		return "sunset"
	case Dawn:
		return "dawn"
	case Dusk:
		return "dusk"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// SkyEvent is a single crossing of the Sun through a reference altitude.
type SkyEvent struct {
	Kind EventKind
	Time time.Time
}

type searchOptions struct {
	step      time.Duration
	tolerance time.Duration
}

// SearchOption configures an event search.
type SearchOption func(*searchOptions)

// WithStep sets the sampling interval. The search assumes at most one
// crossing per interval.
func WithStep(d time.Duration) SearchOption {
	return func(o *searchOptions) {
		o.step = d
	}
}

// WithTolerance sets the precision to which crossings are refined.
func WithTolerance(d time.Duration) SearchOption {
	return func(o *searchOptions) {
		o.tolerance = d
	}
}

// newSearch applies opts over the default step and tolerance and checks
// them the same way Config.Validate does.
func newSearch(opts []SearchOption) (solver.Search, error) {
	cfg := DefaultConfig()
	o := searchOptions{step: cfg.SampleStep, tolerance: cfg.Tolerance}
	for _, fn := range opts {
		fn(&o)
	}
	cfg.SampleStep, cfg.Tolerance = o.step, o.tolerance
	if err := cfg.Validate(); err != nil {
		return solver.Search{}, err
	}
	return solver.Search{Step: o.step, Tolerance: o.tolerance}, nil
}

// FindSunEvents returns every sunrise and sunset inside w, in ascending
// order. A window in which the Sun never crosses the horizon (polar day or
// night) yields an empty slice and a nil error.
func FindSunEvents(src ephemeris.Source, f Frame, w TimeWindow, opts ...SearchOption) ([]SkyEvent, error) {
	return findEvents(src, f, w, HorizonAltitude, Sunrise, Sunset, opts)
}

// FindTwilightEvents returns the dawn and dusk crossings of the Sun through
// levelDeg inside w, e.g. AstronomicalAltitude for astronomical dawn/dusk.
func FindTwilightEvents(src ephemeris.Source, f Frame, w TimeWindow, levelDeg float64, opts ...SearchOption) ([]SkyEvent, error) {
	return findEvents(src, f, w, levelDeg, Dawn, Dusk, opts)
}

func findEvents(src ephemeris.Source, f Frame, w TimeWindow, level float64, up, down EventKind, opts []SearchOption) ([]SkyEvent, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	search, err := newSearch(opts)
	if err != nil {
		return nil, err
	}
	crossings, err := solver.FindCrossings(sunAltitude(src, f), w.Start, w.End, level, solver.CrossingAny, search)
	if err != nil {
		return nil, err
	}
	events := make([]SkyEvent, 0, len(crossings))
	for _, c := range crossings {
		kind := up
		if c.Type == solver.CrossingDown {
			kind = down
		}
		events = append(events, SkyEvent{Kind: kind, Time: c.Time})
	}
	return events, nil
}

func (e *Engine) searchOptions() []SearchOption {
	return []SearchOption{WithStep(e.cfg.SampleStep), WithTolerance(e.cfg.Tolerance)}
}

// SunEvents is FindSunEvents with the engine's search settings.
func (e *Engine) SunEvents(f Frame, w TimeWindow) ([]SkyEvent, error) {
	return FindSunEvents(e.src, f, w, e.searchOptions()...)
}

// TwilightEvents is FindTwilightEvents with the engine's search settings.
func (e *Engine) TwilightEvents(f Frame, w TimeWindow, levelDeg float64) ([]SkyEvent, error) {
	return FindTwilightEvents(e.src, f, w, levelDeg, e.searchOptions()...)
}
