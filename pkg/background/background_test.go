package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSkyDeterministic(t *testing.T) {
	g := NewGenerator(200, 120)

	a := g.GenerateSky(1)
	b := g.GenerateSky(1)
	c := g.GenerateSky(2)

	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestGenerateSkyShape(t *testing.T) {
	g := NewGenerator(320, 200)
	img := g.GenerateSky(7)

	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// The bottom row is always covered by the near ridge.
	for x := 0; x < 320; x += 40 {
		assert.Equal(t, uint8(255), img.RGBAAt(x, 199).A)
		assert.NotEqual(t, horizon, img.RGBAAt(x, 199), "column %d", x)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, zenith, lerp(zenith, horizon, 0))
	assert.Equal(t, horizon, lerp(zenith, horizon, 1))
}

func TestSkyCoversUpperHalf(t *testing.T) {
	img := Sky(320, 240)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
	assert.Equal(t, img.Pix, Sky(320, 240).Pix)
}
