package astropal

// Classify reports whether p is above thresholdDeg. The comparison is
// strict: a target exactly on the threshold is not visible.
func Classify(p Apparent, thresholdDeg float64) bool {
	return p.Altitude > thresholdDeg
}

// Visible applies the engine's AltitudeThreshold.
func (e *Engine) Visible(p Apparent) bool {
	return Classify(p, e.cfg.AltitudeThreshold)
}
