package road

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTrack is returned when a track cannot be built from its parameters.
var ErrInvalidTrack = errors.New("invalid track")

// Track is a fixed, circular sequence of segments.
type Track struct {
	segments      []Segment
	segmentLength float64
}

// BuildTrack creates n segments spaced segmentLength apart and applies the
// profile's curve and elevation rules to them.
func BuildTrack(n int, segmentLength float64, profile Profile) (*Track, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: segment count must be positive, got %d", ErrInvalidTrack, n)
	}
	if !(segmentLength > 0) || math.IsInf(segmentLength, 0) {
		return nil, fmt.Errorf("%w: segment length must be positive, got %v", ErrInvalidTrack, segmentLength)
	}

	segments := make([]Segment, n)
	for i := range segments {
		seg := Segment{
			Index:  i,
			WorldZ: float64(i) * segmentLength,
		}
		profile.apply(&seg)
		if !isFinite(seg.Curve) || !isFinite(seg.WorldY) {
			return nil, fmt.Errorf("%w: segment %d has non-finite curve %v or elevation %v",
				ErrInvalidTrack, i, seg.Curve, seg.WorldY)
		}
		segments[i] = seg
	}

	return &Track{
		segments:      segments,
		segmentLength: segmentLength,
	}, nil
}

// Len returns the number of segments
func (t *Track) Len() int {
	return len(t.segments)
}

// SegmentLength returns the world distance covered by one segment
func (t *Track) SegmentLength() float64 {
	return t.segmentLength
}

// Length returns the world distance of one full lap
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.segmentLength
}

// At returns segment i, wrapping i around the track in either direction.
func (t *Track) At(i int) Segment {
	return t.segments[t.wrapIndex(i)]
}

// Segments returns a copy of every segment in track order.
func (t *Track) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// SegmentIndexAt returns the index of the segment containing a track
// distance. The distance is expected to be wrapped already.
func (t *Track) SegmentIndexAt(distance float64) int {
	return t.wrapIndex(int(math.Floor(distance / t.segmentLength)))
}

// Wrap reduces distance into [0, Length()).
func (t *Track) Wrap(distance float64) float64 {
	length := t.Length()
	d := math.Mod(distance, length)
	if d < 0 {
		d += length
	}
	// A tiny negative remainder can round up to exactly one lap.
	if d >= length {
		d = 0
	}
	return d
}

func (t *Track) wrapIndex(i int) int {
	n := len(t.segments)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
