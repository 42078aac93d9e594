package road

import "math"

// Unbounded marks a Range with no upper limit.
const Unbounded = -1

// Range selects segment indices strictly greater than After and strictly
// less than Before. A Before of Unbounded runs to the end of the track.
type Range struct {
	After  int
	Before int
}

// Contains reports whether segment index i falls inside the range
func (r Range) Contains(i int) bool {
	if i <= r.After {
		return false
	}
	return r.Before == Unbounded || i < r.Before
}

// CurveRule assigns a constant curvature to every segment in its range.
type CurveRule struct {
	Segments Range
	Curve    float64
}

// Wave is one sine component of a hill profile
type Wave struct {
	Period float64 // Segments per radian
	Weight float64 // Fraction of the hill amplitude
}

// HillRule sets segment elevation to the sum of its waves scaled by Amplitude.
type HillRule struct {
	Segments  Range
	Amplitude float64
	Waves     []Wave
}

// Elevation returns the hill height at segment index i
func (h HillRule) Elevation(i int) float64 {
	y := 0.0
	for _, w := range h.Waves {
		y += math.Sin(float64(i)/w.Period) * h.Amplitude * w.Weight
	}
	return y
}

// Profile is the authoring data a track is built from. Rules are applied in
// order, so a later rule overrides an earlier one on overlapping segments.
type Profile struct {
	Curves []CurveRule
	Hills  []HillRule
}

// apply sets curve and elevation on one segment
func (p Profile) apply(seg *Segment) {
	for _, c := range p.Curves {
		if c.Segments.Contains(seg.Index) {
			seg.Curve = c.Curve
		}
	}
	for _, h := range p.Hills {
		if h.Segments.Contains(seg.Index) {
			seg.WorldY = h.Elevation(seg.Index)
		}
	}
}

// ReferenceHillHeight is the shared amplitude of the reference hills.
const ReferenceHillHeight = 1800.0

// ReferenceProfile returns the stock highway: a long right-hander, a rolling
// hill section, then a left-hander that tightens into a hairpin near the end
// of the lap.
func ReferenceProfile() Profile {
	return Profile{
		Curves: []CurveRule{
			{Segments: Range{After: 100, Before: 700}, Curve: 0.5},
			{Segments: Range{After: 1100, Before: Unbounded}, Curve: -0.7},
			{Segments: Range{After: 1400, Before: Unbounded}, Curve: 2.0},
		},
		Hills: []HillRule{
			{
				Segments:  Range{After: 750, Before: Unbounded},
				Amplitude: ReferenceHillHeight,
				Waves: []Wave{
					{Period: 30, Weight: 1},
					{Period: 8, Weight: 0.15},
				},
			},
		},
	}
}
