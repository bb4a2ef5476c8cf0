// Package solver locates the instants at which a continuous altitude
// function crosses a target level.
package solver

import (
	"errors"
	"time"
)

// AltitudeFunc returns altitude in degrees at time t (topocentric).
// Implementations report failures through the error so that a broken
// ephemeris is never mistaken for "no crossing".
type AltitudeFunc func(t time.Time) (float64, error)

// EventType describes whether we are looking for a rising or setting event.
type EventType int

const (
	// CrossingUp means altitude is increasing through the target value (rise).
	CrossingUp EventType = iota
	// CrossingDown means altitude is decreasing through the target value (set).
	CrossingDown
	// CrossingAny matches either direction.
	CrossingAny
)

// Crossing is a single refined crossing of the target level.
type Crossing struct {
	Time time.Time
	Type EventType // CrossingUp or CrossingDown
}

// Search controls how finely the window is sampled and refined.
type Search struct {
	// Step is the sampling interval. It must be short enough that at most
	// one crossing falls inside any one interval.
	Step time.Duration
	// Tolerance is the bracket width at which bisection stops.
	Tolerance time.Duration
}

// ErrBadSearch is returned for non-positive Step or Tolerance.
var ErrBadSearch = errors.New("solver: step and tolerance must be positive")

// FindCrossings returns every crossing of targetDeg by f inside
// [start, end] in ascending time order. An empty result is not an error.
func FindCrossings(f AltitudeFunc, start, end time.Time, targetDeg float64, eventType EventType, s Search) ([]Crossing, error) {
	if s.Step <= 0 || s.Tolerance <= 0 {
		return nil, ErrBadSearch
	}
	if end.Before(start) {
		return nil, nil
	}

	prevT := start
	prevAlt, err := f(prevT)
	if err != nil {
		return nil, err
	}
	prevAlt -= targetDeg

	var out []Crossing
	for prevT.Before(end) {
		t := prevT.Add(s.Step)
		if t.After(end) {
			t = end
		}
		alt, err := f(t)
		if err != nil {
			return nil, err
		}
		alt -= targetDeg

		if dir, ok := crossingType(prevAlt, alt); ok && matches(dir, eventType) {
			at, err := bisect(f, prevT, t, prevAlt, targetDeg, dir, s.Tolerance)
			if err != nil {
				return nil, err
			}
			out = append(out, Crossing{Time: at, Type: dir})
		}
		prevT, prevAlt = t, alt
	}
	return out, nil
}

// FindAltitudeEvent returns the first crossing of targetDeg in the
// requested direction. ok is false when there is none.
func FindAltitudeEvent(f AltitudeFunc, start, end time.Time, targetDeg float64, eventType EventType, s Search) (time.Time, bool, error) {
	cs, err := FindCrossings(f, start, end, targetDeg, eventType, s)
	if err != nil || len(cs) == 0 {
		return time.Time{}, false, err
	}
	return cs[0].Time, true, nil
}

// crossingType reports the direction of a sign change between two
// consecutive samples (already offset by the target). A sample exactly on
// the target counts as being above it so that a touch is seen only once.
func crossingType(a1, a2 float64) (EventType, bool) {
	switch {
	case a1 < 0 && a2 >= 0:
		return CrossingUp, true
	case a1 >= 0 && a2 < 0:
		return CrossingDown, true
	}
	return CrossingAny, false
}

func matches(dir, want EventType) bool {
	return want == CrossingAny || dir == want
}

func bisect(f AltitudeFunc, a, b time.Time, altA, targetDeg float64, dir EventType, tol time.Duration) (time.Time, error) {
	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		altM, err := f(mid)
		if err != nil {
			return time.Time{}, err
		}
		altM -= targetDeg

		if d, ok := crossingType(altA, altM); ok && d == dir {
			b = mid
		} else {
			a = mid
			altA = altM
		}
	}
	return a.Add(b.Sub(a) / 2), nil
}
