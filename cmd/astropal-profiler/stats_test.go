package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	var s stats
	for _, v := range []float64{1, -3, math.NaN(), 2} {
		s.add(v)
	}
	if s.count != 3 || s.min != -3 || s.max != 2 {
		t.Errorf("stats = %+v", s)
	}
	if got := s.mean(); got != 0 {
		t.Errorf("mean = %v, want 0", got)
	}
	if got := s.meanAbs(); got != 2 {
		t.Errorf("meanAbs = %v, want 2", got)
	}
	var buf bytes.Buffer
	s.print(&buf, "Rise")
	if !strings.Contains(buf.String(), "mean abs: 2.000") {
		t.Errorf("print = %s", buf.String())
	}
	var empty stats
	if !math.IsNaN(empty.mean()) {
		t.Errorf("empty mean = %v", empty.mean())
	}
}

func TestDiffMinutes(t *testing.T) {
	a := time.Date(2025, 1, 1, 7, 30, 0, 0, time.UTC)
	if got := diffMinutes(a, a.Add(-90*time.Second)); got != 1.5 {
		t.Errorf("diffMinutes = %v, want 1.5", got)
	}
	if got := diffMinutes(a, time.Time{}); !math.IsNaN(got) {
		t.Errorf("diffMinutes(zero) = %v, want NaN", got)
	}
	if formatFloat(math.NaN()) != "" || formatFloat(0.5) != "0.5000" {
		t.Errorf("formatFloat")
	}
}
