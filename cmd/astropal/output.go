package main

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/astropal"
)

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// formatDMS renders decimal degrees as degrees, minutes and seconds with a
// hemisphere letter, e.g. 49°16'57.72" N.
func formatDMS(deg float64, isLat bool) string {
	dir := "E"
	switch {
	case isLat && deg >= 0:
		dir = "N"
	case isLat:
		dir = "S"
	case deg < 0:
		dir = "W"
	}
	abs := math.Abs(deg)
	d := math.Floor(abs)
	mf := (abs - d) * 60
	m := math.Floor(mf)
	s := (mf - m) * 60
	if s >= 59.995 {
		// Carry so rounding never prints 60.00 seconds.
		s = 0
		m++
		if m == 60 {
			m = 0
			d++
		}
	}
	return fmt.Sprintf("%d°%d'%.2f\" %s", int(d), int(m), s, dir)
}

type siteJSON struct {
	Place     string    `json:"place"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Elevation float64   `json:"elevation"`
	Time      time.Time `json:"time"`
	Timezone  string    `json:"timezone"`
}

func newSiteJSON(s site) siteJSON {
	return siteJSON{
		Place:     s.Name,
		Latitude:  s.Coords.Lat,
		Longitude: s.Coords.Lon,
		Elevation: s.Coords.Elevation,
		Time:      s.Time,
		Timezone:  s.Time.Location().String(),
	}
}

type verdictJSON struct {
	Name     string  `json:"name"`
	Altitude float64 `json:"altitude"`
	Azimuth  float64 `json:"azimuth"`
	Visible  bool    `json:"visible"`
	Distance float64 `json:"distance_au,omitempty"`
}

func newVerdictJSON(v astropal.Verdict) verdictJSON {
	return verdictJSON{
		Name:     v.Name,
		Altitude: v.Position.Altitude,
		Azimuth:  v.Position.Azimuth,
		Visible:  v.Visible,
		Distance: v.Position.Distance,
	}
}

func verdictsJSON(vs []astropal.Verdict) []verdictJSON {
	out := make([]verdictJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, newVerdictJSON(v))
	}
	return out
}

type nowJSON struct {
	Site    siteJSON      `json:"site"`
	Night   bool          `json:"astronomical_night"`
	Visible []verdictJSON `json:"visible"`
}

type planetJSON struct {
	Site   siteJSON    `json:"site"`
	Night  bool        `json:"astronomical_night"`
	Target verdictJSON `json:"target"`
}

type eventJSON struct {
	Kind string    `json:"kind"`
	Time time.Time `json:"time"`
}

func eventsJSON(events []astropal.SkyEvent, tz *time.Location) []eventJSON {
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, eventJSON{Kind: e.Kind.String(), Time: e.Time.In(tz)})
	}
	return out
}

type sunJSON struct {
	Site   siteJSON    `json:"site"`
	Events []eventJSON `json:"events"`
}

type moonJSON struct {
	Site         siteJSON `json:"site"`
	Phase        string   `json:"phase"`
	Angle        float64  `json:"angle"`
	Separation   float64  `json:"separation"`
	Illumination float64  `json:"illumination"`
	Waxing       bool     `json:"waxing"`
	Altitude     float64  `json:"altitude"`
	Azimuth      float64  `json:"azimuth"`
	Visible      bool     `json:"visible"`
}

type nightJSON struct {
	Site  siteJSON `json:"site"`
	Night bool     `json:"astronomical_night"`
	State string   `json:"state"`
}

type latLongJSON struct {
	Place     string  `json:"place"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	LatDMS    string  `json:"latitude_dms"`
	LonDMS    string  `json:"longitude_dms"`
}
