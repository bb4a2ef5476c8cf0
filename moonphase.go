package astropal

import (
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/astropal/ephemeris"
	"github.com/thurmanmarka/astropal/internal/timeutil"
)

// MoonPhase is one of seven 45° buckets of the Moon's elongation.
type MoonPhase int

const (
	NewToWaxingCrescent MoonPhase = iota
	FirstQuarter
	WaxingGibbous
	Full
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	NewToWaxingCrescent: "New Moon to Waxing Crescent",
	FirstQuarter:        "First Quarter",
	WaxingGibbous:       "Waxing Gibbous",
	Full:                "Full Moon",
	WaningGibbous:       "Waning Gibbous",
	LastQuarter:         "Last Quarter",
	WaningCrescent:      "Waning Crescent",
}

func (p MoonPhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("MoonPhase(%d)", int(p))
	}
	return phaseNames[p]
}

// PhaseFromAngle maps a phase angle in degrees to its bucket. The angle is
// normalized to [0,360) first; everything from 270° up is WaningCrescent.
// NaN and infinite angles map to NewToWaxingCrescent.
func PhaseFromAngle(deg float64) MoonPhase {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return NewToWaxingCrescent
	}
	a := timeutil.Normalize360(deg)
	if a >= 270 {
		return WaningCrescent
	}
	return MoonPhase(int(a / 45))
}

// MoonReport describes the Moon's phase as seen by an observer.
type MoonReport struct {
	Time time.Time
	// Angle is the signed elongation in [0,360): the Sun-Moon separation
	// while waxing, 360 minus the separation while waning.
	Angle float64
	// Separation is the great-circle angle between Sun and Moon, [0,180].
	Separation float64
	// Illumination is the illuminated fraction of the disk, [0,1].
	Illumination float64
	Waxing       bool
	Phase        MoonPhase
	// Position is where the Moon appears to the observer at Time.
	Position Apparent
}

// MoonPhaseAt computes the lunar phase for the observer in f at t from the
// apparent directions of the Sun and the Moon. The Moon is waxing while it
// lies east of the Sun in right ascension.
func MoonPhaseAt(src ephemeris.Source, f Frame, t time.Time) (MoonReport, error) {
	s, err := Observe(src, f, sunTarget, t)
	if err != nil {
		return MoonReport{}, err
	}
	m, err := Observe(src, f, moonTarget, t)
	if err != nil {
		return MoonReport{}, err
	}

	sep := timeutil.Separation(s.RA.Rad(), s.Dec.Rad(), m.RA.Rad(), m.Dec.Rad())
	waxing := timeutil.Normalize360(timeutil.Rad2Deg(m.RA.Rad()-s.RA.Rad())) < 180
	angle := sep
	if !waxing {
		angle = timeutil.Normalize360(360 - sep)
	}
	illum := (1 - math.Cos(timeutil.Deg2Rad(sep))) / 2

	return MoonReport{
		Time:         t,
		Angle:        angle,
		Separation:   sep,
		Illumination: math.Max(0, math.Min(1, illum)),
		Waxing:       waxing,
		Phase:        PhaseFromAngle(angle),
		Position:     m,
	}, nil
}

// MoonPhase is MoonPhaseAt over the engine's Source.
func (e *Engine) MoonPhase(f Frame, t time.Time) (MoonReport, error) {
	return MoonPhaseAt(e.src, f, t)
}
