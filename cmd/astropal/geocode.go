package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/geospatial/zipcode"

	"github.com/thurmanmarka/astropal"
)

var errPlaceNotFound = errors.New("place not found")

// geocoder turns a free-form place query into coordinates.
type geocoder interface {
	Geocode(query string) (astropal.Coordinates, error)
}

// placeTable resolves the names listed in the config file.
type placeTable map[string]Place

func newPlaceTable(places []Place) placeTable {
	pt := placeTable{}
	for _, p := range places {
		pt[strings.ToLower(strings.TrimSpace(p.Name))] = p
	}
	return pt
}

func (pt placeTable) Geocode(query string) (astropal.Coordinates, error) {
	p, ok := pt[strings.ToLower(strings.TrimSpace(query))]
	if !ok {
		return astropal.Coordinates{}, fmt.Errorf("%w: %q", errPlaceNotFound, query)
	}
	return astropal.Coordinates{Lat: p.Lat, Lon: p.Lon, Elevation: p.Elevation}, nil
}

// postalCodes resolves "<admin> <postal code>" queries, e.g. "BC V6B" or
// "CA 94103", using a geonames postal code dump.
type postalCodes struct {
	db *zipcode.DB
}

func loadPostalCodes(file string) (*postalCodes, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	db := zipcode.NewDB()
	if err := db.Load(data); err != nil {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return &postalCodes{db: db}, nil
}

func (pc *postalCodes) Geocode(query string) (astropal.Coordinates, error) {
	admin, postal, ok := strings.Cut(strings.TrimSpace(query), " ")
	if !ok {
		return astropal.Coordinates{}, fmt.Errorf("%w: %q is not of the form <admin> <postal code>", errPlaceNotFound, query)
	}
	ll, ok := pc.db.LatLong(admin, strings.ToUpper(strings.TrimSpace(postal)))
	if !ok {
		return astropal.Coordinates{}, fmt.Errorf("%w: %q", errPlaceNotFound, query)
	}
	return astropal.Coordinates{Lat: ll.Lat, Lon: ll.Long}, nil
}

// geocoders tries each geocoder in turn.
type geocoders []geocoder

func (gs geocoders) Geocode(query string) (astropal.Coordinates, error) {
	for _, g := range gs {
		c, err := g.Geocode(query)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, errPlaceNotFound) {
			return astropal.Coordinates{}, err
		}
	}
	return astropal.Coordinates{}, fmt.Errorf("%w: %q", errPlaceNotFound, query)
}

func (c *Config) geocoder() (geocoder, error) {
	gs := geocoders{newPlaceTable(append([]Place{c.Location}, c.Places...))}
	if c.Zipcode != "" {
		pc, err := loadPostalCodes(c.Zipcode)
		if err != nil {
			return nil, err
		}
		gs = append(gs, pc)
	}
	return gs, nil
}
