package solver

import (
	"errors"
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

// sine altitude with a 24h period, zero at 06:00 (rising) and 18:00 (setting).
func sineAlt(t time.Time) (float64, error) {
	h := t.Sub(t0).Hours()
	return 45 * math.Sin((h-6)/24*2*math.Pi), nil
}

func TestFindCrossings(t *testing.T) {
	s := Search{Step: 10 * time.Minute, Tolerance: 10 * time.Second}
	cs, err := FindCrossings(sineAlt, t0, t0.Add(24*time.Hour), 0, CrossingAny, s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cs), 2; got != want {
		t.Fatalf("got %d crossings, want %d", got, want)
	}
	for i, want := range []struct {
		at  time.Duration
		typ EventType
	}{
		{6 * time.Hour, CrossingUp},
		{18 * time.Hour, CrossingDown},
	} {
		if cs[i].Type != want.typ {
			t.Errorf("crossing %d: type %v, want %v", i, cs[i].Type, want.typ)
		}
		if d := cs[i].Time.Sub(t0.Add(want.at)); d > 10*time.Second || d < -10*time.Second {
			t.Errorf("crossing %d: off by %v", i, d)
		}
	}
	if !cs[0].Time.Before(cs[1].Time) {
		t.Errorf("crossings not ascending")
	}
}

func TestFindCrossingsDirection(t *testing.T) {
	s := Search{Step: 10 * time.Minute, Tolerance: 10 * time.Second}
	cs, err := FindCrossings(sineAlt, t0, t0.Add(48*time.Hour), 10, CrossingDown, s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cs), 2; got != want {
		t.Fatalf("got %d down crossings, want %d", got, want)
	}
	for _, c := range cs {
		if c.Type != CrossingDown {
			t.Errorf("unexpected %v", c.Type)
		}
	}
}

func TestFindCrossingsNone(t *testing.T) {
	always := func(time.Time) (float64, error) { return 12, nil }
	cs, err := FindCrossings(always, t0, t0.Add(24*time.Hour), 0, CrossingAny, Search{Step: time.Hour, Tolerance: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 0 {
		t.Errorf("got %v, want none", cs)
	}
	if _, ok, err := FindAltitudeEvent(always, t0, t0.Add(time.Hour), 0, CrossingUp, Search{Step: time.Hour, Tolerance: time.Second}); ok || err != nil {
		t.Errorf("got ok=%v err=%v", ok, err)
	}
}

func TestFindCrossingsErrors(t *testing.T) {
	if _, err := FindCrossings(sineAlt, t0, t0.Add(time.Hour), 0, CrossingAny, Search{}); !errors.Is(err, ErrBadSearch) {
		t.Errorf("got %v, want ErrBadSearch", err)
	}
	boom := errors.New("boom")
	fail := func(time.Time) (float64, error) { return 0, boom }
	if _, err := FindCrossings(fail, t0, t0.Add(time.Hour), 0, CrossingAny, Search{Step: time.Minute, Tolerance: time.Second}); !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}
