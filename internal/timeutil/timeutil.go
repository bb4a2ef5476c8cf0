// Package timeutil holds the time-scale and angle helpers shared by the
// position models and the topocentric transform.
package timeutil

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/deltat"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// J2000 is the Julian day of the J2000.0 epoch.
const J2000 = 2451545.0

// JulianDay returns the Julian day (UT) of t.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// DeltaT returns an estimate of TT-UT in seconds for t.
//
// Meeus' table 10.A is interpolated between 1620 and 2010; outside it the
// polynomial fits of chapter 10 take over.
func DeltaT(t time.Time) float64 {
	u := t.UTC()
	y := float64(u.Year()) + (float64(u.YearDay())-0.5)/365.25
	switch {
	case y < 948:
		return deltat.PolyBefore948(y).Sec()
	case y < 1620:
		return deltat.Poly948to1600(y).Sec()
	case y < 2010:
		return deltat.Interp10A(JulianDay(u)).Sec()
	default:
		return deltat.PolyAfter2000(y).Sec()
	}
}

// JulianEphemerisDay returns the Julian ephemeris day (TT) of t.
func JulianEphemerisDay(t time.Time) float64 {
	return JulianDay(t) + DeltaT(t)/86400
}

// JulianCenturies returns Julian centuries of TT since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return (JulianEphemerisDay(t) - J2000) / 36525
}

// DaysSinceJ2000 returns the number of TT days since J2000.0.
func DaysSinceJ2000(t time.Time) float64 {
	return JulianEphemerisDay(t) - J2000
}

// -----------------------------
// Basic degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// math.Mod can return 360 after the correction for tiny negatives.
	if d >= 360.0 {
		d -= 360.0
	}
	return d
}

func Normalize24(h float64) float64 {
	h = math.Mod(h, 24.0)
	if h < 0 {
		h += 24.0
	}
	if h >= 24.0 {
		h -= 24.0
	}
	return h
}

// Clamp1 limits x to [-1, 1] to absorb rounding noise before acos/asin.
func Clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Separation returns the great-circle angle in degrees between two
// directions given as (ra, dec) pairs in radians. The result is in [0, 180].
//
//	cos ψ = sin δ1 sin δ2 + cos δ1 cos δ2 cos(α1 - α2)
func Separation(ra1, dec1, ra2, dec2 float64) float64 {
	cosPsi := math.Sin(dec1)*math.Sin(dec2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Cos(ra1-ra2)
	return Rad2Deg(math.Acos(Clamp1(cosPsi)))
}

// ApparentObliquity returns the true obliquity of the ecliptic and the
// nutation in longitude for the given Julian ephemeris day.
func ApparentObliquity(jde float64) (ε, Δψ unit.Angle) {
	Δψ, Δε := nutation.Nutation(jde)
	return nutation.MeanObliquity(jde) + Δε, Δψ
}

// EclipticToEquatorial converts geocentric ecliptic coordinates referred to
// the mean equinox of date into apparent equatorial coordinates by adding
// nutation in longitude and using the true obliquity.
func EclipticToEquatorial(λ, β unit.Angle, jde float64) (unit.RA, unit.Angle) {
	ε, Δψ := ApparentObliquity(jde)
	return coord.EclToEq(λ+Δψ, β, ε.Sin(), ε.Cos())
}
