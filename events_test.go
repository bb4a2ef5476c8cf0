package astropal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/thurmanmarka/astropal"
)

func within(got, want time.Time, tol time.Duration) bool {
	d := got.Sub(want)
	return d > -tol && d < tol
}

func TestFindSunEventsEquator(t *testing.T) {
	f := mustFrame(t, astropal.Coordinates{}, equinox)
	events, err := astropal.FindSunEvents(src, f, astropal.DayWindow(equinox))
	if err != nil {
		t.Fatalf("FindSunEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(events), events)
	}
	rise, set := events[0], events[1]
	if rise.Kind != astropal.Sunrise || set.Kind != astropal.Sunset {
		t.Fatalf("kinds = %v, %v", rise.Kind, set.Kind)
	}
	// The equation of time is about -7.5 minutes on this date.
	if want := time.Date(2025, time.March, 20, 6, 7, 30, 0, time.UTC); !within(rise.Time, want, 3*time.Minute) {
		t.Errorf("sunrise = %v, want about %v", rise.Time, want)
	}
	if want := time.Date(2025, time.March, 20, 18, 7, 30, 0, time.UTC); !within(set.Time, want, 3*time.Minute) {
		t.Errorf("sunset = %v, want about %v", set.Time, want)
	}
	if d := set.Time.Sub(rise.Time); d < 12*time.Hour-2*time.Minute || d > 12*time.Hour+2*time.Minute {
		t.Errorf("day length = %v, want about 12h", d)
	}
}

func TestFindSunEventsPolar(t *testing.T) {
	start := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	for _, lat := range []float64{78, -78} {
		f := mustFrame(t, astropal.Coordinates{Lat: lat, Lon: 15}, start)
		events, err := astropal.FindSunEvents(src, f, astropal.DayWindow(start))
		if err != nil {
			t.Fatalf("lat %v: %v", lat, err)
		}
		if len(events) != 0 {
			t.Errorf("lat %v: got %v, want no events", lat, events)
		}
	}
}

func TestDaylightHours(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		min, max float64
	}{
		{"summer solstice", time.Date(2025, time.June, 21, 7, 0, 0, 0, time.UTC), 13.8, 14.4},
		{"winter solstice", time.Date(2025, time.December, 21, 7, 0, 0, 0, time.UTC), 9.6, 10.2},
		{"spring equinox", time.Date(2025, time.March, 20, 7, 0, 0, 0, time.UTC), 11.8, 12.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFrame(t, phoenix, tt.date)
			events, err := astropal.FindSunEvents(src, f, astropal.DayWindow(tt.date))
			if err != nil {
				t.Fatal(err)
			}
			if len(events) != 2 || events[0].Kind != astropal.Sunrise {
				t.Fatalf("events = %v", events)
			}
			hours := events[1].Time.Sub(events[0].Time).Hours()
			if hours < tt.min || hours > tt.max {
				t.Errorf("daylight = %.2fh, want [%v, %v]", hours, tt.min, tt.max)
			}
		})
	}
}

func TestFindSunEventsOrdered(t *testing.T) {
	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	w := astropal.TimeWindow{Start: start, End: start.Add(72 * time.Hour)}
	f := mustFrame(t, phoenix, start)
	events, err := astropal.FindSunEvents(src, f, w, astropal.WithStep(5*time.Minute), astropal.WithTolerance(5*time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 6 {
		t.Fatalf("got %d events over three days, want 6", len(events))
	}
	for i := 1; i < len(events); i++ {
		if !events[i].Time.After(events[i-1].Time) {
			t.Errorf("events out of order at %d: %v", i, events)
		}
		if events[i].Kind == events[i-1].Kind {
			t.Errorf("consecutive %v at %d", events[i].Kind, i)
		}
	}
}

func TestFindTwilightEvents(t *testing.T) {
	start := time.Date(2025, time.March, 20, 7, 0, 0, 0, time.UTC)
	f := mustFrame(t, phoenix, start)
	w := astropal.DayWindow(start)
	sun, err := astropal.FindSunEvents(src, f, w)
	if err != nil {
		t.Fatal(err)
	}
	astro, err := astropal.FindTwilightEvents(src, f, w, astropal.AstronomicalAltitude)
	if err != nil {
		t.Fatal(err)
	}
	if len(sun) != 2 || len(astro) != 2 {
		t.Fatalf("sun=%v astro=%v", sun, astro)
	}
	if astro[0].Kind != astropal.Dawn || astro[1].Kind != astropal.Dusk {
		t.Errorf("kinds = %v, %v", astro[0].Kind, astro[1].Kind)
	}
	if !astro[0].Time.Before(sun[0].Time) || !astro[1].Time.After(sun[1].Time) {
		t.Errorf("astronomical twilight %v does not bracket the day %v", astro, sun)
	}
}

func TestFindSunEventsErrors(t *testing.T) {
	f := mustFrame(t, phoenix, equinox)
	back := astropal.TimeWindow{Start: equinox, End: equinox.Add(-time.Hour)}
	if _, err := astropal.FindSunEvents(src, f, back); !errors.Is(err, astropal.ErrInvalidWindow) {
		t.Errorf("reversed window: %v", err)
	}
	for _, tc := range []struct {
		name string
		opts []astropal.SearchOption
	}{
		{"zero step", []astropal.SearchOption{astropal.WithStep(0)}},
		{"step too long", []astropal.SearchOption{astropal.WithStep(3 * time.Hour)}},
		{"zero tolerance", []astropal.SearchOption{astropal.WithTolerance(0)}},
		{"tolerance equals step", []astropal.SearchOption{astropal.WithStep(time.Minute), astropal.WithTolerance(time.Minute)}},
		{"tolerance above step", []astropal.SearchOption{astropal.WithTolerance(time.Hour)}},
	} {
		_, err := astropal.FindSunEvents(src, f, astropal.DayWindow(equinox), tc.opts...)
		if !errors.Is(err, astropal.ErrInvalidConfig) {
			t.Errorf("%v: got %v, want ErrInvalidConfig", tc.name, err)
		}
		_, err = astropal.FindTwilightEvents(src, f, astropal.DayWindow(equinox), astropal.CivilAltitude, tc.opts...)
		if !errors.Is(err, astropal.ErrInvalidConfig) {
			t.Errorf("%v: twilight got %v, want ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestEngineSunEvents(t *testing.T) {
	eng, err := astropal.NewEngine(src, astropal.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	f := mustFrame(t, astropal.Coordinates{}, equinox)
	a, err := eng.SunEvents(f, astropal.DayWindow(equinox))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := astropal.FindSunEvents(src, f, astropal.DayWindow(equinox))
	if len(a) != len(b) {
		t.Fatalf("engine %v != package %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("event %d: %v != %v", i, a[i], b[i])
		}
	}
}
