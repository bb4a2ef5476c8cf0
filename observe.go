package astropal

import (
	"fmt"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/parallax"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/astropal/catalog"
	"github.com/thurmanmarka/astropal/ephemeris"
	"github.com/thurmanmarka/astropal/internal/timeutil"
)

// Apparent is where a target appears to an observer at one instant.
type Apparent struct {
	Altitude float64 // degrees above the geometric horizon, [-90, 90]
	Azimuth  float64 // degrees east of north, [0, 360)

	// Topocentric apparent equatorial coordinates of date.
	RA  unit.RA
	Dec unit.Angle

	// Distance in AU; zero for fixed points.
	Distance float64
}

// Observe returns the apparent altitude and azimuth of target from f at t.
//
// Ephemeris targets are placed by src (which applies light-time, aberration
// and nutation), shifted for diurnal parallax and rotated into the local
// horizon with apparent sidereal time. Fixed points are used as given, with
// no precession or proper motion. Refraction is not applied.
//
// Every call is a fresh projection: the Earth's rotation makes the result
// depend on t, so callers sampling over time must call Observe per sample.
func Observe(src ephemeris.Source, f Frame, target catalog.Target, t time.Time) (Apparent, error) {
	if err := target.Validate(); err != nil {
		return Apparent{}, err
	}
	jd := timeutil.JulianDay(t)

	var (
		α    unit.RA
		δ    unit.Angle
		dist float64
	)
	switch target.Kind {
	case catalog.Ephemeris:
		st, err := src.Position(target.Body, t)
		if err != nil {
			return Apparent{}, fmt.Errorf("%w: %v: %w", ErrEphemerisUnavailable, target.Body, err)
		}
		α, δ = parallax.Topocentric(st.RA, st.Dec, st.Distance, f.ρsφ, f.ρcφ, f.west, jd)
		dist = st.Distance
	case catalog.FixedPoint:
		α = unit.RAFromRad(timeutil.Deg2Rad(target.RAHours * 15))
		δ = unit.AngleFromDeg(target.DecDegrees)
	}

	// Meeus measures azimuth westward from the south.
	A, h := coord.EqToHz(α, δ, f.φ, f.west, sidereal.Apparent(jd))
	return Apparent{
		Altitude: h.Deg(),
		Azimuth:  timeutil.Normalize360(A.Deg() + 180),
		RA:       α,
		Dec:      δ,
		Distance: dist,
	}, nil
}

// Observe is Observe over the engine's Source.
func (e *Engine) Observe(f Frame, target catalog.Target, t time.Time) (Apparent, error) {
	return Observe(e.src, f, target, t)
}

var sunTarget = catalog.BodyTarget(ephemeris.Sun)
var moonTarget = catalog.BodyTarget(ephemeris.Moon)

func sunAltitude(src ephemeris.Source, f Frame) func(time.Time) (float64, error) {
	return func(t time.Time) (float64, error) {
		p, err := Observe(src, f, sunTarget, t)
		return p.Altitude, err
	}
}
