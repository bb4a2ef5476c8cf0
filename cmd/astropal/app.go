package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/astropal"
	"github.com/thurmanmarka/astropal/catalog"
)

type app struct {
	cfg     *Config
	engine  *astropal.Engine
	catalog *catalog.Catalog
	geo     geocoder
	tz      *time.Location
	close   func() error
	now     func() time.Time
	out     io.Writer
}

func newApp(ctx context.Context, cfg *Config) (*app, error) {
	tz, err := cfg.location()
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.TimeZone, err)
	}
	cat, err := cfg.catalog()
	if err != nil {
		return nil, err
	}
	geo, err := cfg.geocoder()
	if err != nil {
		return nil, err
	}
	src, closer, err := cfg.source()
	if err != nil {
		return nil, err
	}
	eng, err := astropal.NewEngine(src, cfg.engineConfig())
	if err != nil {
		closer()
		return nil, err
	}
	ctxlog.Logger(ctx).Debug("configured",
		"ephemeris", cfg.Ephemeris.Kind,
		"catalog", cat.Len(),
		"timezone", tz.String(),
		"threshold", eng.Config().AltitudeThreshold)
	return &app{
		cfg:     cfg,
		engine:  eng,
		catalog: cat,
		geo:     geo,
		tz:      tz,
		close:   closer,
		now:     time.Now,
		out:     os.Stdout,
	}, nil
}

// siteFlags are the flags every command accepts to choose where and when.
type siteFlags struct {
	place string
	lat   float64
	lon   float64
	elev  float64
	when  string
	json  bool
}

func newFlagSet(name, args string, sf *siteFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&sf.place, "place", "", "place name from the config file, or '<admin> <postal code>'")
	fs.Float64Var(&sf.lat, "lat", 0, "latitude in degrees (north positive)")
	fs.Float64Var(&sf.lon, "lon", 0, "longitude in degrees (east positive, west negative)")
	fs.Float64Var(&sf.elev, "elev", 0, "elevation in meters, used with -lat and -lon")
	fs.StringVar(&sf.when, "time", "", "time in RFC3339 or 'YYYY-MM-DDTHH:MM' in the configured time zone (default now)")
	fs.BoolVar(&sf.json, "json", false, "output result as JSON")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: astropal %s [flags] %s\n\nFlags:\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

// site is a resolved observer: a name for display, its coordinates and the
// instant of interest.
type site struct {
	Name   string
	Coords astropal.Coordinates
	Time   time.Time
	Frame  astropal.Frame
}

func (a *app) resolve(ctx context.Context, fs *flag.FlagSet, sf *siteFlags) (site, error) {
	var s site
	switch {
	case flagSet(fs, "lat") || flagSet(fs, "lon"):
		s.Name = fmt.Sprintf("%.4f, %.4f", sf.lat, sf.lon)
		s.Coords = astropal.Coordinates{Lat: sf.lat, Lon: sf.lon, Elevation: sf.elev}
	case sf.place != "":
		c, err := a.geo.Geocode(sf.place)
		if err != nil {
			return s, err
		}
		s.Name, s.Coords = sf.place, c
	default:
		l := a.cfg.Location
		s.Name = l.Name
		s.Coords = astropal.Coordinates{Lat: l.Lat, Lon: l.Lon, Elevation: l.Elevation}
	}
	t, err := parseTime(sf.when, a.tz, a.now)
	if err != nil {
		return s, err
	}
	s.Time = t
	s.Frame, err = a.engine.Frame(s.Coords, t)
	if err != nil {
		return s, err
	}
	ctxlog.Logger(ctx).Info("site", "name", s.Name, "lat", s.Coords.Lat, "lon", s.Coords.Lon, "time", t)
	return s, nil
}

func parseTime(v string, tz *time.Location, now func() time.Time) (time.Time, error) {
	if v == "" {
		return now().In(tz), nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, v, tz); err == nil {
			return t.In(tz), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse -time %q: %w", v, err)
}
