// Package sun computes the apparent geocentric position of the Sun.
package sun

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/astropal/internal/timeutil"
)

// Equatorial is an apparent geocentric position referred to the true
// equator and equinox of date.
type Equatorial struct {
	RA       unit.RA
	Dec      unit.Angle
	Distance float64 // AU
}

// Position returns the apparent geocentric position of the Sun at t.
// Aberration and nutation are included; accuracy is about 0.01°.
func Position(t time.Time) Equatorial {
	jde := timeutil.JulianEphemerisDay(t)
	α, δ := solar.ApparentEquatorial(jde)
	return Equatorial{
		RA:       α,
		Dec:      δ,
		Distance: solar.Radius(timeutil.JulianCenturies(t)),
	}
}
