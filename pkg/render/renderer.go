// Package render turns the track ahead of the player into a list of filled
// polygons.
//
// Each frame walks a fixed window of segments starting just past the camera.
// Curvature is integrated twice into a sideways offset, every segment is
// projected, and a segment is only drawn if it lands higher on screen than
// everything drawn before it. Segments hidden behind a crest still feed the
// curvature sums.
package render

import (
	"github.com/golangdaddy/roadster/pkg/models"
	"github.com/golangdaddy/roadster/pkg/projection"
	"github.com/golangdaddy/roadster/pkg/road"
)

// DefaultRumbleScale widens the rumble strip past the road edge.
const DefaultRumbleScale = 1.2

// Settings are the fixed camera and screen parameters.
type Settings struct {
	Screen       projection.Viewport
	RoadWidth    float64 // Half width of the road in world units
	CameraDepth  float64 // Depth constant of the perspective divide
	CameraHeight float64 // Eye height above the road at the camera's segment
	DrawDistance int     // Number of segments walked per frame
	RumbleScale  float64
}

// ProjectedSegment is one traversal slot of a frame.
type ProjectedSegment struct {
	N       int          // Unwrapped traversal index
	Segment road.Segment // Source segment, Segment.Index == N mod track length
	WorldX  float64      // Accumulated road centre offset
	WorldZ  float64      // Z including any lap wrap
	Visible bool         // Passed the horizon test

	projection.Projection
}

// Frame is the output of one render.
type Frame struct {
	CurrentSegment int
	CameraHeight   float64
	Segments       []ProjectedSegment // In traversal order
	Horizon        []float64          // Horizon value after each drawn segment
	Polygons       []Polygon          // In draw order
}

// Draw fills every polygon onto the surface in emission order
func (f *Frame) Draw(s Surface) {
	for _, p := range f.Polygons {
		s.FillPolygon(p.Color, p.Points)
	}
}

// Renderer walks the track each frame. It reuses its buffers, so a Renderer
// must not be used from more than one goroutine.
type Renderer struct {
	settings Settings
	palette  Palette
	frame    Frame
}

// NewRenderer creates a renderer
func NewRenderer(settings Settings, palette Palette) *Renderer {
	if settings.RumbleScale == 0 {
		settings.RumbleScale = DefaultRumbleScale
	}
	return &Renderer{
		settings: settings,
		palette:  palette,
		frame: Frame{
			Segments: make([]ProjectedSegment, 0, settings.DrawDistance),
			Horizon:  make([]float64, 0, settings.DrawDistance),
			Polygons: make([]Polygon, 0, settings.DrawDistance*3),
		},
	}
}

// Settings returns the renderer's settings
func (r *Renderer) Settings() Settings {
	return r.settings
}

// Render projects the window of track ahead of the player. The returned frame
// is owned by the renderer and stays valid until the next call to Render.
func (r *Renderer) Render(track *road.Track, player *models.Player) *Frame {
	s := r.settings
	f := &r.frame
	f.Segments = f.Segments[:0]
	f.Horizon = f.Horizon[:0]
	f.Polygons = f.Polygons[:0]

	n := track.Len()
	lapLength := track.Length()
	current := track.SegmentIndexAt(player.TrackDistance)

	f.CurrentSegment = current
	f.CameraHeight = track.At(current).WorldY + s.CameraHeight

	cam := projection.Camera{
		Position: projection.Point{
			X: player.LateralOffset * s.RoadWidth,
			Y: f.CameraHeight,
			Z: player.TrackDistance,
		},
		Depth: s.CameraDepth,
	}

	maxY := s.Screen.Height
	x, dx := 0.0, 0.0

	// Start one past the camera's own segment so no point is projected at
	// zero depth.
	for i := current + 1; i <= current+s.DrawDistance; i++ {
		seg := track.At(i)
		ps := ProjectedSegment{
			N:       i,
			Segment: seg,
			WorldX:  x,
			WorldZ:  seg.WorldZ + float64(i/n)*lapLength,
		}
		ps.Projection = projection.Project(
			projection.Point{X: ps.WorldX, Y: seg.WorldY, Z: ps.WorldZ},
			cam, s.Screen, s.RoadWidth,
		)

		x += dx
		dx += seg.Curve

		if ps.Y < maxY {
			maxY = ps.Y
			ps.Visible = true
			f.Horizon = append(f.Horizon, maxY)
			if len(f.Segments) > 0 {
				r.emit(f.Segments[len(f.Segments)-1], ps)
			}
		}
		f.Segments = append(f.Segments, ps)
	}

	return f
}

// emit appends grass, rumble and road quads spanning prev to cur
func (r *Renderer) emit(prev, cur ProjectedSegment) {
	band := r.palette.BandFor(cur.N)
	width := r.settings.Screen.Width
	rumble := r.settings.RumbleScale

	r.frame.Polygons = append(r.frame.Polygons,
		Quad(band.Grass, 0, prev.Y, width, 0, cur.Y, width),
		Quad(band.Rumble, prev.X, prev.Y, prev.HalfWidth*rumble, cur.X, cur.Y, cur.HalfWidth*rumble),
		Quad(band.Road, prev.X, prev.Y, prev.HalfWidth, cur.X, cur.Y, cur.HalfWidth),
	)
}
