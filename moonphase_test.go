package astropal_test

import (
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/astropal"
)

func TestPhaseFromAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want astropal.MoonPhase
	}{
		{0, astropal.NewToWaxingCrescent},
		{44.9, astropal.NewToWaxingCrescent},
		{45, astropal.FirstQuarter},
		{89.9, astropal.FirstQuarter},
		{90, astropal.WaxingGibbous},
		{135, astropal.Full},
		{179.9, astropal.Full},
		{180, astropal.WaningGibbous},
		{225, astropal.LastQuarter},
		{269.9, astropal.LastQuarter},
		{270, astropal.WaningCrescent},
		{359.9, astropal.WaningCrescent},
		{360, astropal.NewToWaxingCrescent},
		{-10, astropal.WaningCrescent},
		{math.NaN(), astropal.NewToWaxingCrescent},
		{math.Inf(1), astropal.NewToWaxingCrescent},
		{math.Inf(-1), astropal.NewToWaxingCrescent},
	}
	for _, tt := range tests {
		if got := astropal.PhaseFromAngle(tt.deg); got != tt.want {
			t.Errorf("PhaseFromAngle(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestMoonPhaseString(t *testing.T) {
	if got, want := astropal.NewToWaxingCrescent.String(), "New Moon to Waxing Crescent"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := astropal.Full.String(), "Full Moon"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := astropal.MoonPhase(42).String(), "MoonPhase(42)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoonPhaseAt(t *testing.T) {
	// 2025 lunations: new 2025-05-27 03:02, first quarter 2025-05-04 13:52,
	// full 2025-05-12 16:56, last quarter 2025-05-20 11:59 (UTC).
	tests := []struct {
		name     string
		at       time.Time
		want     astropal.MoonPhase
		waxing   bool
		minIllum float64
		maxIllum float64
	}{
		{"waxing crescent", time.Date(2025, time.May, 29, 0, 0, 0, 0, time.UTC), astropal.NewToWaxingCrescent, true, 0, 0.15},
		{"waxing gibbous", time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC), astropal.WaxingGibbous, true, 0.6, 0.9},
		{"before full", time.Date(2025, time.May, 11, 12, 0, 0, 0, time.UTC), astropal.Full, true, 0.9, 1},
		{"waning gibbous", time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC), astropal.WaningGibbous, false, 0.8, 1},
		{"waning crescent", time.Date(2025, time.May, 24, 0, 0, 0, 0, time.UTC), astropal.WaningCrescent, false, 0.05, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := astropal.MoonPhaseAt(src, mustFrame(t, phoenix, tt.at), tt.at)
			if err != nil {
				t.Fatal(err)
			}
			t.Logf("angle %.2f sep %.2f illum %.3f", r.Angle, r.Separation, r.Illumination)
			if r.Phase != tt.want || r.Waxing != tt.waxing {
				t.Errorf("phase = %v waxing=%v, want %v waxing=%v", r.Phase, r.Waxing, tt.want, tt.waxing)
			}
			if r.Illumination < tt.minIllum || r.Illumination > tt.maxIllum {
				t.Errorf("illumination = %.3f, want [%v, %v]", r.Illumination, tt.minIllum, tt.maxIllum)
			}
			if r.Separation < 0 || r.Separation > 180 || r.Angle < 0 || r.Angle >= 360 {
				t.Errorf("angles out of range: %+v", r)
			}
			want := (1 - math.Cos(r.Separation*math.Pi/180)) / 2
			if math.Abs(r.Illumination-want) > 1e-12 {
				t.Errorf("illumination %v inconsistent with separation %v", r.Illumination, r.Separation)
			}
		})
	}
}
