package main

import (
	"fmt"
	"io"
	"math"
	"time"
)

// stats accumulates min, max and mean of a series, ignoring NaNs.
type stats struct {
	count int
	sum   float64
	abs   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
	s.sum += v
	s.abs += math.Abs(v)
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func (s *stats) meanAbs() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.abs / float64(s.count)
}

func (s *stats) print(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if s.count == 0 {
		fmt.Fprintf(w, "  no data\n")
		return
	}
	fmt.Fprintf(w, "  count:    %d\n", s.count)
	fmt.Fprintf(w, "  min:      %.3f\n", s.min)
	fmt.Fprintf(w, "  max:      %.3f\n", s.max)
	fmt.Fprintf(w, "  mean:     %.3f\n", s.mean())
	fmt.Fprintf(w, "  mean abs: %.3f\n", s.meanAbs())
}

// diffMinutes returns a-b in minutes, or NaN if either time is missing.
func diffMinutes(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.4f", v)
}
