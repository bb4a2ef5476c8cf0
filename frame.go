package astropal

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/globe"
	"github.com/soniakeys/unit"
)

// Frame is an observer position bound to a reference instant. It is a value
// type; build it once per request and pass it to every computation.
type Frame struct {
	Coordinates Coordinates
	Time        time.Time

	φ        unit.Angle // geographic latitude
	west     unit.Angle // longitude, positive west as Meeus uses it
	ρsφ, ρcφ float64    // geocentric parallax constants
}

// NewFrame validates c and returns a Frame for it at t.
func NewFrame(c Coordinates, t time.Time) (Frame, error) {
	if err := c.Validate(); err != nil {
		return Frame{}, err
	}
	φ := unit.AngleFromDeg(c.Lat)
	s, co := globe.Earth76.ParallaxConstants(φ, c.Elevation)
	return Frame{
		Coordinates: c,
		Time:        t,
		φ:           φ,
		west:        unit.AngleFromDeg(-c.Lon),
		ρsφ:         s,
		ρcφ:         co,
	}, nil
}

// At returns a copy of the frame with a different reference instant.
func (f Frame) At(t time.Time) Frame {
	f.Time = t
	return f
}

// Frame is shorthand for NewFrame.
func (e *Engine) Frame(c Coordinates, t time.Time) (Frame, error) {
	return NewFrame(c, t)
}
