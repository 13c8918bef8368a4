package core

// minScale is the floor applied to the raw zoom factor so that viewport
// math never divides by zero or propagates infinities.
const minScale = 1e-6

// ScaleMode records how the current zoom factor was chosen.
type ScaleMode int

const (
	// ScaleAuto is recomputed on viewport resizes to fit the grid.
	ScaleAuto ScaleMode = iota
	// ScaleManual is set by user zoom input and survives resizes until
	// the user explicitly requests an auto fit again.
	ScaleManual
)

// String names the mode for status readouts.
func (m ScaleMode) String() string {
	if m == ScaleManual {
		return "manual"
	}
	return "auto"
}

// Scale is the viewport zoom factor tagged with its mode.
type Scale struct {
	Mode   ScaleMode
	Factor float64
}

// AutoScale returns a system-computed scale.
func AutoScale(f float64) Scale { return Scale{Mode: ScaleAuto, Factor: f} }

// ManualScale returns a user-chosen scale, clamped to be non-negative.
func ManualScale(f float64) Scale {
	if f < 0 {
		f = 0
	}
	return Scale{Mode: ScaleManual, Factor: f}
}

// Raw returns the zoom factor floored at a small positive epsilon, safe to
// divide by.
func (s Scale) Raw() float64 {
	if s.Factor < minScale {
		return minScale
	}
	return s.Factor
}
