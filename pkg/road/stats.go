package road

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summary describes the shape of a built track.
type Summary struct {
	Segments       int
	Length         float64
	MinElevation   float64
	MaxElevation   float64
	CurvedSegments int
	TotalCurve     float64 // Sum of curve over the lap; zero means left and right bends balance
	MaxAbsCurve    float64
}

// Summarize computes a Summary for the track
func Summarize(t *Track) Summary {
	elevations := make([]float64, t.Len())
	curves := make([]float64, t.Len())
	absCurves := make([]float64, t.Len())
	curved := 0
	for i, seg := range t.segments {
		elevations[i] = seg.WorldY
		curves[i] = seg.Curve
		absCurves[i] = math.Abs(seg.Curve)
		if seg.Curve != 0 {
			curved++
		}
	}

	return Summary{
		Segments:       t.Len(),
		Length:         t.Length(),
		MinElevation:   floats.Min(elevations),
		MaxElevation:   floats.Max(elevations),
		CurvedSegments: curved,
		TotalCurve:     floats.Sum(curves),
		MaxAbsCurve:    floats.Max(absCurves),
	}
}
