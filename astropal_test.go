package astropal_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/astropal"
	"github.com/thurmanmarka/astropal/catalog"
	"github.com/thurmanmarka/astropal/ephemeris"
)

var (
	src     = ephemeris.NewAnalytic()
	equinox = time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	phoenix = astropal.Coordinates{Lat: 33.4484, Lon: -112.0740, Elevation: 331}
)

func mustFrame(t *testing.T, c astropal.Coordinates, at time.Time) astropal.Frame {
	t.Helper()
	f, err := astropal.NewFrame(c, at)
	if err != nil {
		t.Fatalf("NewFrame(%+v) error = %v", c, err)
	}
	return f
}

func TestCoordinatesValidate(t *testing.T) {
	tests := []struct {
		name string
		c    astropal.Coordinates
		ok   bool
	}{
		{"origin", astropal.Coordinates{}, true},
		{"north pole", astropal.Coordinates{Lat: 90, Lon: 180}, true},
		{"south pole", astropal.Coordinates{Lat: -90, Lon: -180}, true},
		{"lat too big", astropal.Coordinates{Lat: 90.0001}, false},
		{"lon too small", astropal.Coordinates{Lon: -180.5}, false},
		{"nan lat", astropal.Coordinates{Lat: math.NaN()}, false},
		{"below sea", astropal.Coordinates{Elevation: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := astropal.NewFrame(tt.c, equinox)
			if tt.ok && err != nil {
				t.Fatalf("NewFrame() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, astropal.ErrInvalidPosition) {
				t.Fatalf("NewFrame() error = %v, want ErrInvalidPosition", err)
			}
		})
	}
}

func TestFrameAt(t *testing.T) {
	f := mustFrame(t, phoenix, equinox)
	later := equinox.Add(time.Hour)
	g := f.At(later)
	if !g.Time.Equal(later) || !f.Time.Equal(equinox) {
		t.Errorf("At() times = %v, %v", f.Time, g.Time)
	}
	if g.Coordinates != f.Coordinates {
		t.Errorf("At() changed coordinates: %+v", g.Coordinates)
	}
}

func TestConfig(t *testing.T) {
	def := astropal.DefaultConfig()
	if err := def.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if def.AltitudeThreshold != 20 || def.SampleStep != 10*time.Minute || def.Tolerance != 15*time.Second {
		t.Errorf("DefaultConfig() = %+v", def)
	}
	bad := def
	bad.Tolerance = bad.SampleStep
	if err := bad.Validate(); !errors.Is(err, astropal.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
	if _, err := astropal.NewEngine(nil, def); !errors.Is(err, astropal.ErrInvalidConfig) {
		t.Errorf("NewEngine(nil) = %v, want ErrInvalidConfig", err)
	}
}

func TestTimeWindow(t *testing.T) {
	w := astropal.DayWindow(equinox)
	if w.End.Sub(w.Start) != 24*time.Hour {
		t.Errorf("DayWindow() = %v", w)
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	empty := astropal.TimeWindow{Start: equinox, End: equinox}
	if err := empty.Validate(); err != nil {
		t.Errorf("zero length window: %v", err)
	}
	back := astropal.TimeWindow{Start: equinox, End: equinox.Add(-time.Second)}
	if err := back.Validate(); !errors.Is(err, astropal.ErrInvalidWindow) {
		t.Errorf("reversed window: %v", err)
	}
}

func ExampleFindSunEvents() {
	f, err := astropal.NewFrame(astropal.Coordinates{Lat: 0, Lon: 0}, equinox)
	if err != nil {
		panic(err)
	}
	events, err := astropal.FindSunEvents(ephemeris.NewAnalytic(), f, astropal.DayWindow(equinox))
	if err != nil {
		panic(err)
	}
	for _, e := range events {
		fmt.Println(e.Kind, e.Time.Format(time.Kitchen))
	}
	// No // Output: block; the refined times depend on the search tolerance.
}

func ExampleEngine_Survey() {
	eng, err := astropal.NewEngine(ephemeris.NewAnalytic(), astropal.DefaultConfig())
	if err != nil {
		panic(err)
	}
	now := time.Date(2025, time.November, 30, 4, 0, 0, 0, time.UTC)
	f, err := eng.Frame(phoenix, now)
	if err != nil {
		panic(err)
	}
	survey := eng.Survey(f, catalog.Default().Planets(), now)
	for _, v := range survey.Visible() {
		fmt.Printf("%s alt=%.1f az=%.1f\n", v.Name, v.Position.Altitude, v.Position.Azimuth)
	}
}

func ExampleMoonPhaseAt() {
	at := time.Date(2025, time.May, 11, 12, 0, 0, 0, time.UTC)
	f, err := astropal.NewFrame(phoenix, at)
	if err != nil {
		panic(err)
	}
	r, err := astropal.MoonPhaseAt(ephemeris.NewAnalytic(), f, at)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Phase)
	// Output: Full Moon
}
