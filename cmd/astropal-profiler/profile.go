package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"

	"github.com/thurmanmarka/astropal"
	"github.com/thurmanmarka/astropal/catalog"
	"github.com/thurmanmarka/astropal/ephemeris"
	"github.com/thurmanmarka/astropal/internal/solver"
	"github.com/thurmanmarka/astropal/internal/timeutil"
)

// standardAltitude is the conventional sunrise altitude: the Sun's upper
// limb on the horizon with mean refraction. go-sunrise and suncalc both
// use it.
const standardAltitude = -0.833

// reference is one day to profile, with optional published times.
type reference struct {
	date     time.Time // local midnight
	rise     time.Time
	set      time.Time
	hasTimes bool
}

func parseReference(row []string, loc *time.Location) (reference, error) {
	if len(row) < 3 {
		return reference{}, fmt.Errorf("expected at least 3 columns (date,rise,set), got %d", len(row))
	}
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(row[0]), loc)
	if err != nil {
		return reference{}, fmt.Errorf("invalid date %q: %w", row[0], err)
	}
	rise, err := parseLocalTime(date, strings.TrimSpace(row[1]), loc)
	if err != nil {
		return reference{}, fmt.Errorf("invalid rise time %q: %w", row[1], err)
	}
	set, err := parseLocalTime(date, strings.TrimSpace(row[2]), loc)
	if err != nil {
		return reference{}, fmt.Errorf("invalid set time %q: %w", row[2], err)
	}
	return reference{date: date, rise: rise, set: set, hasTimes: true}, nil
}

func parseLocalTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	layout := "15:04"
	if strings.Count(hhmm, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.ParseInLocation(layout, hhmm, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc), nil
}

type profiler struct {
	src    ephemeris.Source
	coords astropal.Coordinates
	loc    *time.Location
	level  float64
}

// dayResult holds astropal's times for a day and the signed differences,
// in minutes (astropal minus other), against each reference.
type dayResult struct {
	date      time.Time
	rise, set time.Time

	riseVsSunrise, setVsSunrise float64 // go-sunrise
	riseVsSuncalc, setVsSuncalc float64 // suncalc
	riseVsRef, setVsRef         float64 // reference CSV

	// Solar altitude and azimuth at local noon, degrees, astropal minus suncalc.
	noonAltVsSuncalc, noonAzVsSuncalc float64
}

var csvHeader = []string{
	"date", "rise", "set",
	"rise_vs_sunrise", "set_vs_sunrise",
	"rise_vs_suncalc", "set_vs_suncalc",
	"rise_vs_ref", "set_vs_ref",
	"noon_alt_vs_suncalc", "noon_az_vs_suncalc",
}

func (d dayResult) record() []string {
	clock := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("15:04:05")
	}
	return []string{
		d.date.Format("2006-01-02"), clock(d.rise), clock(d.set),
		formatFloat(d.riseVsSunrise), formatFloat(d.setVsSunrise),
		formatFloat(d.riseVsSuncalc), formatFloat(d.setVsSuncalc),
		formatFloat(d.riseVsRef), formatFloat(d.setVsRef),
		formatFloat(d.noonAltVsSuncalc), formatFloat(d.noonAzVsSuncalc),
	}
}

// events returns the first up and down crossings of p.level during the
// local day starting at date.
func (p *profiler) events(date time.Time) (rise, set time.Time, err error) {
	f, err := astropal.NewFrame(p.coords, date)
	if err != nil {
		return rise, set, err
	}
	sun := catalog.BodyTarget(ephemeris.Sun)
	altitude := func(t time.Time) (float64, error) {
		a, err := astropal.Observe(p.src, f, sun, t)
		return a.Altitude, err
	}
	w := astropal.DayWindow(date)
	search := solver.Search{Step: 5 * time.Minute, Tolerance: time.Second}
	for _, ev := range []struct {
		dir solver.EventType
		at  *time.Time
	}{
		{solver.CrossingUp, &rise},
		{solver.CrossingDown, &set},
	} {
		t, ok, err := solver.FindAltitudeEvent(altitude, w.Start, w.End, p.level, ev.dir, search)
		if err != nil {
			return rise, set, err
		}
		if ok {
			*ev.at = t.In(p.loc)
		}
	}
	return rise, set, nil
}

func (p *profiler) day(ref reference) (dayResult, error) {
	d := dayResult{date: ref.date}
	var err error
	if d.rise, d.set, err = p.events(ref.date); err != nil {
		return d, err
	}

	y, m, day := ref.date.Date()
	srRise, srSet := sunrise.SunriseSunset(p.coords.Lat, p.coords.Lon, y, m, day)
	d.riseVsSunrise = diffMinutes(d.rise, srRise)
	d.setVsSunrise = diffMinutes(d.set, srSet)

	// suncalc works from the UTC noon of the given instant's day.
	noon := time.Date(y, m, day, 12, 0, 0, 0, p.loc)
	times := suncalc.GetTimes(noon, p.coords.Lat, p.coords.Lon)
	d.riseVsSuncalc = diffMinutes(d.rise, validTime(times["sunrise"].Value))
	d.setVsSuncalc = diffMinutes(d.set, validTime(times["sunset"].Value))

	if ref.hasTimes {
		d.riseVsRef = diffMinutes(d.rise, ref.rise)
		d.setVsRef = diffMinutes(d.set, ref.set)
	} else {
		d.riseVsRef, d.setVsRef = math.NaN(), math.NaN()
	}

	f, err := astropal.NewFrame(p.coords, noon)
	if err != nil {
		return d, err
	}
	ours, err := astropal.Observe(p.src, f, catalog.BodyTarget(ephemeris.Sun), noon)
	if err != nil {
		return d, err
	}
	pos := suncalc.GetPosition(noon, p.coords.Lat, p.coords.Lon)
	// suncalc measures azimuth from the south.
	theirAz := timeutil.Normalize360(timeutil.Rad2Deg(pos.Azimuth) + 180)
	d.noonAltVsSuncalc = ours.Altitude - timeutil.Rad2Deg(pos.Altitude)
	d.noonAzVsSuncalc = math.Remainder(ours.Azimuth-theirAz, 360)
	return d, nil
}

// validTime maps the NaN-derived times suncalc returns for polar days to
// the zero time.
func validTime(t time.Time) time.Time {
	if t.Year() < 1000 || t.Year() > 9000 {
		return time.Time{}
	}
	return t
}

type summary struct {
	skipped                     int
	riseVsSunrise, setVsSunrise stats
	riseVsSuncalc, setVsSuncalc stats
	riseVsRef, setVsRef         stats
	noonAlt, noonAz             stats
}

func (s *summary) add(d dayResult) {
	s.riseVsSunrise.add(d.riseVsSunrise)
	s.setVsSunrise.add(d.setVsSunrise)
	s.riseVsSuncalc.add(d.riseVsSuncalc)
	s.setVsSuncalc.add(d.setVsSuncalc)
	s.riseVsRef.add(d.riseVsRef)
	s.setVsRef.add(d.setVsRef)
	s.noonAlt.add(d.noonAltVsSuncalc)
	s.noonAz.add(d.noonAzVsSuncalc)
}

func (s *summary) print(w io.Writer, withRef bool) {
	s.riseVsSunrise.print(w, "Rise vs go-sunrise (minutes, ours - theirs)")
	s.setVsSunrise.print(w, "Set vs go-sunrise (minutes, ours - theirs)")
	s.riseVsSuncalc.print(w, "Rise vs suncalc (minutes, ours - theirs)")
	s.setVsSuncalc.print(w, "Set vs suncalc (minutes, ours - theirs)")
	if withRef {
		s.riseVsRef.print(w, "Rise vs reference (minutes, ours - ref)")
		s.setVsRef.print(w, "Set vs reference (minutes, ours - ref)")
	}
	s.noonAlt.print(w, "Noon altitude vs suncalc (degrees)")
	s.noonAz.print(w, "Noon azimuth vs suncalc (degrees)")
}
