package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/thurmanmarka/astropal/ephemeris"
)

// Kind discriminates the two flavours of Target.
type Kind int

const (
	// Ephemeris targets move; their position comes from an ephemeris.Source.
	Ephemeris Kind = iota
	// FixedPoint targets sit at fixed right ascension and declination.
	FixedPoint
)

func (k Kind) String() string {
	switch k {
	case Ephemeris:
		return "ephemeris"
	case FixedPoint:
		return "fixed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrInvalidTarget is returned for a Target that violates its invariants.
var ErrInvalidTarget = errors.New("invalid target")

// Target is either an ephemeris body or a fixed point on the celestial
// sphere. Only the fields for its Kind are meaningful.
type Target struct {
	Kind Kind

	Body ephemeris.Body // Ephemeris

	RAHours    float64 // FixedPoint, [0, 24)
	DecDegrees float64 // FixedPoint, [-90, 90]
}

// BodyTarget returns an Ephemeris target for body.
func BodyTarget(body ephemeris.Body) Target {
	return Target{Kind: Ephemeris, Body: body}
}

// FixedTarget returns a FixedPoint target.
func FixedTarget(raHours, decDegrees float64) Target {
	return Target{Kind: FixedPoint, RAHours: raHours, DecDegrees: decDegrees}
}

// Validate checks the invariants for the target's kind.
func (t Target) Validate() error {
	switch t.Kind {
	case Ephemeris:
		if t.Body == "" {
			return fmt.Errorf("%w: empty body", ErrInvalidTarget)
		}
	case FixedPoint:
		if math.IsNaN(t.RAHours) || t.RAHours < 0 || t.RAHours >= 24 {
			return fmt.Errorf("%w: right ascension %vh outside [0,24)", ErrInvalidTarget, t.RAHours)
		}
		if math.IsNaN(t.DecDegrees) || t.DecDegrees < -90 || t.DecDegrees > 90 {
			return fmt.Errorf("%w: declination %v° outside [-90,90]", ErrInvalidTarget, t.DecDegrees)
		}
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidTarget, t.Kind)
	}
	return nil
}

func (t Target) String() string {
	if t.Kind == Ephemeris {
		return string(t.Body)
	}
	return fmt.Sprintf("ra=%.4fh dec=%.4f°", t.RAHours, t.DecDegrees)
}
