package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"

	"github.com/thurmanmarka/astropal"
	"github.com/thurmanmarka/astropal/catalog"
	"github.com/thurmanmarka/astropal/ephemeris"
)

// Place is a named location in the config file.
type Place struct {
	Name      string  `yaml:"name"`
	Lat       float64 `yaml:"lat"`
	Lon       float64 `yaml:"lon"`
	Elevation float64 `yaml:"elevation"`
}

// Config is the contents of the astropal config file.
type Config struct {
	// Location is used when no -place or -lat/-lon is given.
	Location Place `yaml:"location"`
	// TimeZone is the IANA zone used to print times.
	TimeZone string `yaml:"timezone"`
	// Catalog is an optional YAML catalog replacing the built-in one.
	Catalog string `yaml:"catalog"`
	// Threshold is the visibility altitude in degrees.
	Threshold *float64 `yaml:"threshold"`
	Ephemeris struct {
		Kind string `yaml:"kind"` // analytic or vsop87
		Dir  string `yaml:"dir"`  // VSOP87 data directory
	} `yaml:"ephemeris"`
	Places  []Place               `yaml:"places"`
	Zipcode string                `yaml:"zipcodes"` // geonames postal code dump
	Logging cmdutil.LoggingConfig `yaml:"logging"`
}

func defaultConfig() *Config {
	cfg := &Config{
		Location: Place{Name: "Vancouver", Lat: 49.2827, Lon: -123.1207, Elevation: 70},
		TimeZone: "America/Vancouver",
	}
	cfg.Ephemeris.Kind = "analytic"
	cfg.Logging.Format = "text"
	return cfg
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "astropal", "config.yaml")
}

// loadConfig reads file over the defaults. A missing default file is not
// an error; a missing explicit one is.
func loadConfig(file string, explicit bool) (*Config, error) {
	cfg := defaultConfig()
	if file == "" {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(context.Background(), file, cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %v: %w", file, err)
	}
	return cfg, nil
}

func (c *Config) location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

func (c *Config) engineConfig() astropal.Config {
	ec := astropal.DefaultConfig()
	if c.Threshold != nil {
		ec.AltitudeThreshold = *c.Threshold
	}
	return ec
}

func (c *Config) catalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.Catalog)
}

// source returns the configured ephemeris and a function to release it.
func (c *Config) source() (ephemeris.Source, func() error, error) {
	switch c.Ephemeris.Kind {
	case "", "analytic":
		return ephemeris.NewAnalytic(), func() error { return nil }, nil
	case "vsop87":
		v, err := ephemeris.OpenVSOP87(c.Ephemeris.Dir)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown ephemeris kind %q (use analytic or vsop87)", c.Ephemeris.Kind)
}
