package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	profile := Profile{
		Curves: []CurveRule{
			{Segments: Range{After: 1, Before: 4}, Curve: 0.5},
			{Segments: Range{After: 5, Before: Unbounded}, Curve: -1},
		},
	}
	track, err := BuildTrack(8, 100, profile)
	require.NoError(t, err)

	got := Summarize(track)
	assert.Equal(t, Summary{
		Segments:       8,
		Length:         800,
		CurvedSegments: 4,
		TotalCurve:     0.5*2 - 1*2,
		MaxAbsCurve:    1,
	}, got)
}

func TestSummarizeReference(t *testing.T) {
	track, err := BuildTrack(1600, 200, ReferenceProfile())
	require.NoError(t, err)

	got := Summarize(track)
	assert.Equal(t, 599+499, got.CurvedSegments)
	assert.Equal(t, 2.0, got.MaxAbsCurve)
	assert.Less(t, got.MinElevation, 0.0)
	assert.Greater(t, got.MaxElevation, 0.0)
	assert.LessOrEqual(t, got.MaxElevation, ReferenceHillHeight*1.15)
}
