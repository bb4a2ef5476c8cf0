package ephemeris

import (
	"time"

	"github.com/thurmanmarka/astropal/internal/moon"
	"github.com/thurmanmarka/astropal/internal/planet"
	"github.com/thurmanmarka/astropal/internal/sun"
)

var planets = map[Body]planet.ID{
	Mercury: planet.Mercury,
	Venus:   planet.Venus,
	Mars:    planet.Mars,
	Jupiter: planet.Jupiter,
	Saturn:  planet.Saturn,
	Uranus:  planet.Uranus,
	Neptune: planet.Neptune,
}

// Analytic is a Source built from closed-form series: Meeus' solar theory
// for the Sun, ELP-2000/82 (truncated) for the Moon and mean Keplerian
// elements for the planets. It needs no data files and holds no state.
type Analytic struct{}

// NewAnalytic returns an Analytic source.
func NewAnalytic() Analytic {
	return Analytic{}
}

// Position implements Source.
func (Analytic) Position(body Body, t time.Time) (State, error) {
	switch body {
	case Sun:
		eq := sun.Position(t)
		return State{Body: body, RA: eq.RA, Dec: eq.Dec, Distance: eq.Distance}, nil
	case Moon:
		eq := moon.Position(t)
		return State{Body: body, RA: eq.RA, Dec: eq.Dec, Distance: eq.Distance}, nil
	}
	id, ok := planets[body]
	if !ok {
		return State{}, unknown(body)
	}
	eq, err := planet.Position(id, t)
	if err != nil {
		return State{}, err
	}
	return State{Body: body, RA: eq.RA, Dec: eq.Dec, Distance: eq.Distance}, nil
}
