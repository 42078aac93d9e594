// Package surface rasterises render polygons into an in-memory image.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/golangdaddy/roadster/pkg/render"
)

// Canvas rasterises polygons into an RGBA image without a window.
type Canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

// NewCanvas creates a canvas filled with the background colour
func NewCanvas(width, height int, background color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{
		img: img,
		r:   vector.NewRasterizer(width, height),
	}
}

// FillPolygon rasterises a polygon over whatever has been drawn already.
func (c *Canvas) FillPolygon(col color.RGBA, points []render.Point) {
	if len(points) < 3 {
		return
	}

	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
	c.r.DrawOp = draw.Over
	c.r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		c.r.LineTo(float32(p.X), float32(p.Y))
	}
	c.r.ClosePath()
	c.r.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// DrawImage copies src onto the canvas with its top-left corner at pt.
func (c *Canvas) DrawImage(src image.Image, pt image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(pt)
	draw.Draw(c.img, r, src, src.Bounds().Min, draw.Over)
}

// Image returns the rasterised image
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
