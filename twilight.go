package astropal

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/astropal/ephemeris"
)

// Sun altitude boundaries in degrees.
const (
	HorizonAltitude      = 0.0
	CivilAltitude        = -6.0
	NauticalAltitude     = -12.0
	AstronomicalAltitude = -18.0
)

// TwilightState is the sky brightness category implied by the Sun's altitude.
type TwilightState int

const (
	Day TwilightState = iota
	CivilTwilight
	NauticalTwilight
	AstronomicalTwilight
	Night
)

func (s TwilightState) String() string {
	switch s {
	case Day:
		return "day"
	case CivilTwilight:
		return "civil twilight"
	case NauticalTwilight:
		return "nautical twilight"
	case AstronomicalTwilight:
		return "astronomical twilight"
	case Night:
		return "night"
	}
	return fmt.Sprintf("TwilightState(%d)", int(s))
}

// NightFromAltitude reports whether a Sun altitude is strictly below the
// astronomical twilight limit of -18°.
func NightFromAltitude(alt float64) bool {
	return alt < AstronomicalAltitude
}

// StateFromAltitude maps a Sun altitude to its TwilightState. A boundary
// altitude belongs to the brighter state, so -6° is still civil twilight.
func StateFromAltitude(alt float64) TwilightState {
	switch {
	case alt >= HorizonAltitude:
		return Day
	case alt >= CivilAltitude:
		return CivilTwilight
	case alt >= NauticalAltitude:
		return NauticalTwilight
	case !NightFromAltitude(alt):
		return AstronomicalTwilight
	}
	return Night
}

// IsAstronomicalNight reports whether the Sun is more than 18° below the
// horizon for the observer in f at t.
func IsAstronomicalNight(src ephemeris.Source, f Frame, t time.Time) (bool, error) {
	alt, err := sunAltitude(src, f)(t)
	if err != nil {
		return false, err
	}
	return NightFromAltitude(alt), nil
}

// TwilightAt returns the twilight state for the observer in f at t.
func TwilightAt(src ephemeris.Source, f Frame, t time.Time) (TwilightState, error) {
	alt, err := sunAltitude(src, f)(t)
	if err != nil {
		return Day, err
	}
	return StateFromAltitude(alt), nil
}

// IsAstronomicalNight is IsAstronomicalNight over the engine's Source.
func (e *Engine) IsAstronomicalNight(f Frame, t time.Time) (bool, error) {
	return IsAstronomicalNight(e.src, f, t)
}

// Twilight is TwilightAt over the engine's Source.
func (e *Engine) Twilight(f Frame, t time.Time) (TwilightState, error) {
	return TwilightAt(e.src, f, t)
}
