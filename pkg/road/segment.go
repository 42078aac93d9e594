package road

// Segment is one fixed-length slice of track. Segments are immutable once
// the track is built; projection results live in the renderer's frame buffer.
type Segment struct {
	Index  int     // Position in the track (0 <= Index < N)
	WorldZ float64 // Distance along the track where the segment sits
	WorldY float64 // Elevation of the road surface
	Curve  float64 // Lateral bend rate this segment adds to the road ahead
}
