// Package moon computes the apparent geocentric position of the Moon.
package moon

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/astropal/internal/timeutil"
)

// kmPerAU converts Meeus' lunar distance to astronomical units.
const kmPerAU = 149597870.7

// Equatorial is an apparent geocentric position referred to the true
// equator and equinox of date.
type Equatorial struct {
	RA       unit.RA
	Dec      unit.Angle
	Distance float64 // AU
}

// Position returns the apparent geocentric position of the Moon at t,
// using the truncated ELP-2000/82 series of Meeus chapter 47. Light-time
// for the Moon is about 1.3s and is neglected.
func Position(t time.Time) Equatorial {
	jde := timeutil.JulianEphemerisDay(t)
	λ, β, Δ := moonposition.Position(jde)
	α, δ := timeutil.EclipticToEquatorial(λ, β, jde)
	return Equatorial{
		RA:       α,
		Dec:      δ,
		Distance: Δ / kmPerAU,
	}
}
