package ephemeris

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/elliptic"
	pp "github.com/mooncaker816/learnmeeus/v3/planetposition"
	"github.com/mooncaker816/learnmeeus/v3/solar"

	"github.com/thurmanmarka/astropal/internal/moon"
	"github.com/thurmanmarka/astropal/internal/timeutil"
)

var vsopIndex = map[Body]int{
	Mercury: pp.Mercury,
	Venus:   pp.Venus,
	Mars:    pp.Mars,
	Jupiter: pp.Jupiter,
	Saturn:  pp.Saturn,
	Uranus:  pp.Uranus,
	Neptune: pp.Neptune,
}

// VSOP87 is a Source backed by the VSOP87B series files (VSOP87B.mer,
// VSOP87B.ven, ...). The files are read once by OpenVSOP87; afterwards the
// source is read-only. The Moon always comes from the analytic lunar theory.
type VSOP87 struct {
	mu      sync.RWMutex
	earth   *pp.V87Planet
	planets map[Body]*pp.V87Planet
}

// OpenVSOP87 loads the Earth and planet series from dir.
func OpenVSOP87(dir string) (*VSOP87, error) {
	earth, err := pp.LoadPlanetPath(pp.Earth, dir)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 earth from %v: %w", dir, err)
	}
	v := &VSOP87{earth: earth, planets: make(map[Body]*pp.V87Planet, len(vsopIndex))}
	for body, ibody := range vsopIndex {
		p, err := pp.LoadPlanetPath(ibody, dir)
		if err != nil {
			return nil, fmt.Errorf("loading VSOP87 %v from %v: %w", body, dir, err)
		}
		v.planets[body] = p
	}
	return v, nil
}

// Close releases the loaded series. Position fails after Close.
func (v *VSOP87) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.earth = nil
	v.planets = nil
	return nil
}

// Position implements Source.
func (v *VSOP87) Position(body Body, t time.Time) (State, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.earth == nil {
		return State{}, ErrClosed
	}
	jde := timeutil.JulianEphemerisDay(t)
	switch body {
	case Sun:
		α, δ, R := solar.ApparentEquatorialVSOP87(v.earth, jde)
		return State{Body: body, RA: α, Dec: δ, Distance: R}, nil
	case Moon:
		eq := moon.Position(t)
		return State{Body: body, RA: eq.RA, Dec: eq.Dec, Distance: eq.Distance}, nil
	}
	p, ok := v.planets[body]
	if !ok {
		return State{}, unknown(body)
	}
	α, δ := elliptic.Position(p, v.earth, jde)
	return State{Body: body, RA: α, Dec: δ, Distance: geometricDistance(p, v.earth, jde)}, nil
}

// geometricDistance is the Earth-planet distance in AU, used only for the
// diurnal parallax so light-time is ignored.
func geometricDistance(p, earth *pp.V87Planet, jde float64) float64 {
	l, b, r := p.Position(jde)
	l0, b0, r0 := earth.Position(jde)
	x := r*b.Cos()*l.Cos() - r0*b0.Cos()*l0.Cos()
	y := r*b.Cos()*l.Sin() - r0*b0.Cos()*l0.Sin()
	z := r*b.Sin() - r0*b0.Sin()
	return math.Sqrt(x*x + y*y + z*z)
}
