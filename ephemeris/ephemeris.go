// Package ephemeris supplies apparent geocentric positions of solar system
// bodies to the visibility engine.
//
// A Source is acquired once per process and shared read-only between
// requests; every implementation in this package is safe for concurrent
// use once constructed.
package ephemeris

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/unit"
)

// Body identifies a body known to an ephemeris, e.g. "mars".
type Body string

const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Uranus  Body = "uranus"
	Neptune Body = "neptune"
)

// ParseBody normalises a body identifier. Barycenter names as used by JPL
// kernels ("jupiter barycenter") map to the planet itself.
func ParseBody(s string) Body {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " barycenter")
	return Body(s)
}

// ErrUnknownBody is returned for a body the Source cannot resolve.
var ErrUnknownBody = errors.New("unknown body")

// ErrClosed is returned by a Source used after Close.
var ErrClosed = errors.New("ephemeris source closed")

// State is the position of a body as seen from the centre of the Earth.
// RA and Dec are apparent coordinates of date: light-time, annual
// aberration and nutation have already been applied by the Source.
type State struct {
	Body     Body
	RA       unit.RA
	Dec      unit.Angle
	Distance float64 // AU
}

// Source is implemented by anything that can place a Body in the sky.
type Source interface {
	// Position returns the apparent geocentric state of body at t. It
	// returns an error wrapping ErrUnknownBody when body is not covered.
	Position(body Body, t time.Time) (State, error)
}

func unknown(body Body) error {
	return fmt.Errorf("%w: %q", ErrUnknownBody, string(body))
}
