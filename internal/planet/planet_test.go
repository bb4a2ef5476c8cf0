package planet

import (
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/astropal/internal/timeutil"
)

func TestPosition(t *testing.T) {
	when := time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		id      ID
		raHours float64
		decDeg  float64
		dist    float64 // AU, zero to skip
	}{
		// Mars at opposition.
		{Mars, 7.944, 25.10, 0.644},
		{Jupiter, 4.696, 21.66, 0},
	} {
		eq, err := Position(tc.id, when)
		if err != nil {
			t.Fatalf("%v: %v", tc.id, err)
		}
		ra := timeutil.Rad2Deg(eq.RA.Rad()) / 15
		if d := math.Abs(ra - tc.raHours); d > 0.05 {
			t.Errorf("%v: RA %.3fh, want %.3fh", tc.id, ra, tc.raHours)
		}
		if got := eq.Dec.Deg(); math.Abs(got-tc.decDeg) > 0.5 {
			t.Errorf("%v: Dec %.2f°, want %.2f°", tc.id, got, tc.decDeg)
		}
		if tc.dist > 0 && math.Abs(eq.Distance-tc.dist) > 0.01 {
			t.Errorf("%v: distance %.3f AU, want %.3f AU", tc.id, eq.Distance, tc.dist)
		}
	}
}

func TestPositionRejectsEarth(t *testing.T) {
	for _, id := range []ID{Earth, ID(-1), Neptune + 1} {
		if _, err := Position(id, time.Now()); err == nil {
			t.Errorf("%v: expected an error", id)
		}
	}
}

func TestHeliocentricDistance(t *testing.T) {
	jde := timeutil.JulianEphemerisDay(time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC))
	for _, tc := range []struct {
		id       ID
		min, max float64
	}{
		{Mercury, 0.30, 0.47},
		{Earth, 0.983, 1.017},
		{Mars, 1.38, 1.67},
		{Neptune, 29.7, 30.4},
	} {
		if r := heliocentric(tc.id, jde).norm(); r < tc.min || r > tc.max {
			t.Errorf("%v: r = %.3f AU, want [%v, %v]", tc.id, r, tc.min, tc.max)
		}
	}
}
