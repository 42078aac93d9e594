// Package projection maps world points onto the screen with a fixed-depth
// perspective divide. There is no field of view or rotation: the camera always
// looks straight down the track.
package projection

// Point is a position in world space. Z runs along the track.
type Point struct {
	X, Y, Z float64
}

// Viewport is the size of the screen in pixels.
type Viewport struct {
	Width, Height float64
}

// Camera is the eye position plus the depth constant used for the divide.
type Camera struct {
	Position Point
	Depth    float64
}

// Projection is a projected point.
type Projection struct {
	X         float64 // Screen X of the road centre line
	Y         float64 // Screen Y of the road surface
	Scale     float64 // Perspective scale at this depth
	HalfWidth float64 // Half the road width in pixels
}

// Project maps world onto the viewport. roadWidth is the world half-width of
// the road. world.Z must differ from the camera's Z; callers never project the
// segment the camera sits on.
func Project(world Point, cam Camera, screen Viewport, roadWidth float64) Projection {
	scale := cam.Depth / (world.Z - cam.Position.Z)
	halfW := screen.Width / 2
	halfH := screen.Height / 2
	return Projection{
		X:         (1 + scale*(world.X-cam.Position.X)) * halfW,
		Y:         (1 - scale*(world.Y-cam.Position.Y)) * halfH,
		Scale:     scale,
		HalfWidth: scale * roadWidth * halfW,
	}
}
