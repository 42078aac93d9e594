package render

import "image/color"

// BandLength is the number of consecutive segments sharing one set of colours.
const BandLength = 3

// GroundColor fills the screen behind the road and sky.
var GroundColor = color.RGBA{0x69, 0xcd, 0x04, 0xff}

// Band is the set of colours for one stripe of road.
type Band struct {
	Grass  color.RGBA
	Rumble color.RGBA
	Road   color.RGBA
}

// Palette holds the two alternating bands. Even stripes use [0], odd use [1].
type Palette [2]Band

// DefaultPalette returns the classic red/white rumble strip look
func DefaultPalette() Palette {
	return Palette{
		{
			Grass:  color.RGBA{0x00, 0x9a, 0x00, 0xff},
			Rumble: color.RGBA{0xff, 0x00, 0x00, 0xff},
			Road:   color.RGBA{0x69, 0x69, 0x69, 0xff},
		},
		{
			Grass:  color.RGBA{0x10, 0xc8, 0x10, 0xff},
			Rumble: color.RGBA{0xff, 0xff, 0xff, 0xff},
			Road:   color.RGBA{0x6e, 0x6e, 0x6e, 0xff},
		},
	}
}

// BandFor returns the colours for traversal index n. n is the unwrapped index,
// so stripes keep their rhythm across the lap boundary within one frame.
func (p Palette) BandFor(n int) Band {
	stripe := n / BandLength
	if n < 0 && n%BandLength != 0 {
		stripe--
	}
	if stripe%2 == 0 {
		return p[0]
	}
	return p[1]
}
