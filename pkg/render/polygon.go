package render

import "image/color"

// Point is a screen position in pixels.
type Point struct {
	X, Y float64
}

// Polygon is a filled convex polygon.
type Polygon struct {
	Color  color.RGBA
	Points []Point
}

// Surface fills convex polygons. Implementations draw in call order.
type Surface interface {
	FillPolygon(c color.RGBA, points []Point)
}

// Quad builds the trapezoid between two horizontal edges. Each edge is given
// by its centre x, its y and its half width.
func Quad(c color.RGBA, x1, y1, w1, x2, y2, w2 float64) Polygon {
	return Polygon{
		Color: c,
		Points: []Point{
			{X: x1 - w1, Y: y1},
			{X: x2 - w2, Y: y2},
			{X: x2 + w2, Y: y2},
			{X: x1 + w1, Y: y1},
		},
	}
}
