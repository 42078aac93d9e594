package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/roadster/pkg/render"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ImageSurface fills polygons onto an ebiten image.
type ImageSurface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewImageSurface creates a surface drawing onto dst
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// Reset points the surface at a new destination, keeping its buffers.
func (s *ImageSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
}

// FillPolygon draws a convex polygon as a triangle fan.
func (s *ImageSurface) FillPolygon(c color.RGBA, points []render.Point) {
	if len(points) < 3 {
		return
	}

	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff

	s.vertices = s.vertices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}

	s.indices = s.indices[:0]
	for i := 1; i < len(points)-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}
