package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/astropal"
	"github.com/thurmanmarka/astropal/catalog"
)

// messierMagnitudeLimit drops objects too faint to be worth listing.
const messierMagnitudeLimit = 10.5

func runNow(ctx context.Context, a *app, args []string) error {
	var sf siteFlags
	fs := newFlagSet("now", "", &sf)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.resolve(ctx, fs, &sf)
	if err != nil {
		return err
	}
	night, err := a.engine.IsAstronomicalNight(s.Frame, s.Time)
	if err != nil {
		return err
	}
	survey := a.engine.Survey(s.Frame, a.catalog.BrighterThan(messierMagnitudeLimit), s.Time)
	if err := survey.Err(); err != nil {
		// Targets the ephemeris cannot place are reported but do not stop
		// the listing.
		ctxlog.Logger(ctx).Warn("survey", "error", err)
	}
	visible := survey.Visible()
	if sf.json {
		return a.writeJSON(nowJSON{
			Site:    newSiteJSON(s),
			Night:   night,
			Visible: verdictsJSON(visible),
		})
	}
	a.printf("Tonight's sky – %s\n", s.Name)
	a.printf("Time: %s\n\n", s.Time.Format("2006-01-02 15:04 MST"))
	if len(visible) == 0 {
		a.printf("No major objects visible above %.0f° altitude.\n", a.engine.Config().AltitudeThreshold)
		return nil
	}
	a.printf("Visible objects above %.0f° altitude:\n", a.engine.Config().AltitudeThreshold)
	for _, v := range visible {
		a.printf("  %-24s alt %5.1f°  az %5.1f°\n", v.Name, v.Position.Altitude, v.Position.Azimuth)
	}
	if !night {
		a.printf("\nNote: some objects may not be visible due to sky brightness or twilight.\n")
	}
	return nil
}

func runPlanet(ctx context.Context, a *app, args []string) error {
	var sf siteFlags
	fs := newFlagSet("planet", "[name]", &sf)
	if err := fs.Parse(args); err != nil {
		return err
	}
	name := "Mars"
	if fs.NArg() > 0 {
		name = strings.Join(fs.Args(), " ")
	}
	s, err := a.resolve(ctx, fs, &sf)
	if err != nil {
		return err
	}
	v, err := a.engine.Lookup(s.Frame, a.catalog.Planets(), name, s.Time)
	if err != nil {
		if errors.Is(err, catalog.ErrNotInCatalog) {
			return fmt.Errorf("%q is not a recognized planet", name)
		}
		return err
	}
	night, err := a.engine.IsAstronomicalNight(s.Frame, s.Time)
	if err != nil {
		return err
	}
	if sf.json {
		return a.writeJSON(planetJSON{
			Site:   newSiteJSON(s),
			Night:  night,
			Target: newVerdictJSON(v),
		})
	}
	switch {
	case v.Visible && night:
		a.printf("%s is visible in %s now, currently at:\n", v.Name, s.Name)
	case v.Visible:
		a.printf("%s is up in %s now, currently at:\n", v.Name, s.Name)
	default:
		a.printf("%s is not visible in %s now, currently at:\n", v.Name, s.Name)
	}
	a.printf("  Altitude: %.2f°\n", v.Position.Altitude)
	a.printf("  Azimuth : %.2f°\n", v.Position.Azimuth)
	if v.Visible && !night {
		a.printf("Note: %s may not be visible due to sky brightness or twilight.\n", v.Name)
	}
	return nil
}

func runSun(ctx context.Context, a *app, args []string) error {
	var sf siteFlags
	fs := newFlagSet("sun", "", &sf)
	twilight := fs.String("twilight", "", "also report dawn and dusk: civil, nautical or astronomical")
	if err := fs.Parse(args); err != nil {
		return err
	}
	level, err := twilightLevel(*twilight)
	if err != nil {
		return err
	}
	s, err := a.resolve(ctx, fs, &sf)
	if err != nil {
		return err
	}
	w := astropal.DayWindow(s.Time)
	events, err := a.engine.SunEvents(s.Frame, w)
	if err != nil {
		return err
	}
	if *twilight != "" {
		tw, err := a.engine.TwilightEvents(s.Frame, w, level)
		if err != nil {
			return err
		}
		events = mergeEvents(events, tw)
	}
	ctxlog.Logger(ctx).Debug("sun events", "count", len(events), "start", w.Start, "end", w.End)
	if sf.json {
		return a.writeJSON(sunJSON{Site: newSiteJSON(s), Events: eventsJSON(events, a.tz)})
	}
	a.printf("Sunrise and sunset in %s\n", s.Name)
	if len(events) == 0 {
		a.printf("The Sun does not cross the horizon in the next 24 hours.\n")
		return nil
	}
	for _, e := range events {
		a.printf("  %-8s %s\n", eventLabel(e.Kind)+":", e.Time.In(a.tz).Format("2006-01-02 15:04 MST"))
	}
	return nil
}

func twilightLevel(name string) (float64, error) {
	switch strings.ToLower(name) {
	case "", "astronomical":
		return astropal.AstronomicalAltitude, nil
	case "civil":
		return astropal.CivilAltitude, nil
	case "nautical":
		return astropal.NauticalAltitude, nil
	}
	return 0, fmt.Errorf("unknown twilight %q (use civil, nautical or astronomical)", name)
}

func mergeEvents(a, b []astropal.SkyEvent) []astropal.SkyEvent {
	out := make([]astropal.SkyEvent, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].Time.Before(a[i].Time) {
			out = append(out, b[j])
			j++
			continue
		}
		out = append(out, a[i])
		i++
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func eventLabel(k astropal.EventKind) string {
	switch k {
	case astropal.Sunrise:
		return "Sunrise"
	case astropal.Sunset:
		return "Sunset"
	case astropal.Dawn:
		return "Dawn"
	case astropal.Dusk:
		return "Dusk"
	}
	return k.String()
}

func runMoon(ctx context.Context, a *app, args []string) error {
	var sf siteFlags
	fs := newFlagSet("moon", "", &sf)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.resolve(ctx, fs, &sf)
	if err != nil {
		return err
	}
	r, err := a.engine.MoonPhase(s.Frame, s.Time)
	if err != nil {
		return err
	}
	visible := a.engine.Visible(r.Position)
	if sf.json {
		return a.writeJSON(moonJSON{
			Site:         newSiteJSON(s),
			Phase:        r.Phase.String(),
			Angle:        r.Angle,
			Separation:   r.Separation,
			Illumination: r.Illumination,
			Waxing:       r.Waxing,
			Altitude:     r.Position.Altitude,
			Azimuth:      r.Position.Azimuth,
			Visible:      visible,
		})
	}
	a.printf("The Moon now in %s\n", s.Name)
	if visible {
		a.printf("  The Moon is visible now!\n")
	} else {
		a.printf("  The Moon is currently low or below the horizon\n")
	}
	a.printf("  Phase      : %s\n", r.Phase)
	a.printf("  Illuminated: %.1f%%\n", r.Illumination*100)
	a.printf("  Elongation : %.2f°\n", r.Angle)
	a.printf("  Position   : alt %.2f° az %.2f°\n", r.Position.Altitude, r.Position.Azimuth)
	if r.Waxing {
		a.printf("  Trend      : Waxing (illumination increasing)\n")
	} else {
		a.printf("  Trend      : Waning (illumination decreasing)\n")
	}
	return nil
}

func runNight(ctx context.Context, a *app, args []string) error {
	var sf siteFlags
	fs := newFlagSet("night", "", &sf)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.resolve(ctx, fs, &sf)
	if err != nil {
		return err
	}
	night, err := a.engine.IsAstronomicalNight(s.Frame, s.Time)
	if err != nil {
		return err
	}
	state, err := a.engine.Twilight(s.Frame, s.Time)
	if err != nil {
		return err
	}
	if sf.json {
		return a.writeJSON(nightJSON{Site: newSiteJSON(s), Night: night, State: state.String()})
	}
	a.printf("%s at %s: %s\n", s.Name, s.Time.Format("2006-01-02 15:04 MST"), state)
	if night {
		a.printf("It is astronomical night.\n")
	} else {
		a.printf("It is not astronomical night.\n")
	}
	return nil
}

func runLatLong(ctx context.Context, a *app, args []string) error {
	var sf siteFlags
	fs := newFlagSet("latlong", "[place]", &sf)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		sf.place = strings.Join(fs.Args(), " ")
	}
	s, err := a.resolve(ctx, fs, &sf)
	if err != nil {
		return err
	}
	lat, lon := s.Coords.Lat, s.Coords.Lon
	if sf.json {
		return a.writeJSON(latLongJSON{
			Place:     s.Name,
			Latitude:  lat,
			Longitude: lon,
			LatDMS:    formatDMS(lat, true),
			LonDMS:    formatDMS(lon, false),
		})
	}
	a.printf("Coordinates for %s\n", s.Name)
	a.printf("  Latitude : %.4f° | %s\n", lat, formatDMS(lat, true))
	a.printf("  Longitude: %.4f° | %s\n", lon, formatDMS(lon, false))
	return nil
}
