// Package planet computes approximate apparent geocentric positions of the
// major planets from their mean orbital elements.
//
// The elements are Meeus' polynomials referred to the mean equinox of date
// (Astronomical Algorithms, table 31.A). Positions are good to a few
// arcminutes for the inner planets, which is far below the altitude
// thresholds the engine works with.
package planet

import (
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/apparent"
	"github.com/mooncaker816/learnmeeus/v3/kepler"
	"github.com/mooncaker816/learnmeeus/v3/planetelements"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/astropal/internal/timeutil"
)

// ID identifies a planet. Values match the planetelements indices.
type ID int

const (
	Mercury ID = planetelements.Mercury
	Venus   ID = planetelements.Venus
	Earth   ID = planetelements.Earth
	Mars    ID = planetelements.Mars
	Jupiter ID = planetelements.Jupiter
	Saturn  ID = planetelements.Saturn
	Uranus  ID = planetelements.Uranus
	Neptune ID = planetelements.Neptune
)

func (id ID) String() string {
	switch id {
	case Mercury:
		return "mercury"
	case Venus:
		return "venus"
	case Earth:
		return "earth"
	case Mars:
		return "mars"
	case Jupiter:
		return "jupiter"
	case Saturn:
		return "saturn"
	case Uranus:
		return "uranus"
	case Neptune:
		return "neptune"
	}
	return fmt.Sprintf("planet(%d)", int(id))
}

// lightTimePerAU is the light time for one AU, in days.
const lightTimePerAU = 0.0057755183

type vec struct{ x, y, z float64 }

func (v vec) sub(w vec) vec { return vec{v.x - w.x, v.y - w.y, v.z - w.z} }
func (v vec) norm() float64 { return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z) }

// heliocentric returns the heliocentric ecliptic position (AU) of id at jde,
// referred to the mean ecliptic and equinox of date.
func heliocentric(id ID, jde float64) vec {
	var el planetelements.Elements
	planetelements.Mean(int(id), jde, &el)

	M := el.Lon - el.Peri
	E := kepler.Kepler3(el.Ecc, M)
	ν := kepler.True(E, el.Ecc)
	r := kepler.Radius(E, el.Ecc, el.Axis)

	// argument of latitude
	u := el.Peri - el.Node + ν
	su, cu := math.Sincos(u.Rad())
	sΩ, cΩ := math.Sincos(el.Node.Rad())
	si, ci := math.Sincos(el.Inc.Rad())
	return vec{
		x: r * (cΩ*cu - sΩ*su*ci),
		y: r * (sΩ*cu + cΩ*su*ci),
		z: r * su * si,
	}
}

// Equatorial is an apparent geocentric position referred to the true
// equator and equinox of date.
type Equatorial struct {
	RA       unit.RA
	Dec      unit.Angle
	Distance float64 // AU, true distance at the time light left the planet
}

// Position returns the apparent geocentric position of the planet at t.
// Light-time is iterated, then annual aberration and nutation are applied.
func Position(id ID, t time.Time) (Equatorial, error) {
	if id < Mercury || id > Neptune || id == Earth {
		return Equatorial{}, fmt.Errorf("no geocentric position for %v", id)
	}
	jde := timeutil.JulianEphemerisDay(t)
	earth := heliocentric(Earth, jde)

	var geo vec
	τ := 0.0
	for i := 0; i < 3; i++ {
		geo = heliocentric(id, jde-τ).sub(earth)
		τ = lightTimePerAU * geo.norm()
	}
	Δ := geo.norm()

	λ := unit.Angle(math.Atan2(geo.y, geo.x))
	β := unit.Angle(math.Asin(geo.z / Δ))
	Δλ, Δβ := apparent.EclipticAberration(λ, β, jde)

	α, δ := timeutil.EclipticToEquatorial(λ+Δλ, β+Δβ, jde)
	return Equatorial{RA: α, Dec: δ, Distance: Δ}, nil
}
