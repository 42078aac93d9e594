package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates backdrop images
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// DefaultSeed is the seed of the stock sky.
const DefaultSeed = 1600

// Sky returns the stock sky for a screen. It covers the upper half, which is
// as high as the horizon of a flat road reaches.
func Sky(screenWidth, screenHeight int) *image.RGBA {
	return NewGenerator(screenWidth, screenHeight/2).GenerateSky(DefaultSeed)
}

// Sky colours from zenith to horizon
var (
	zenith  = color.RGBA{70, 130, 220, 255}
	horizon = color.RGBA{190, 225, 250, 255}
)

// GenerateSky creates the sky above the road: a vertical gradient with a few
// clouds and a band of distant hills resting on the bottom edge. The same seed
// always produces the same image.
func (g *Generator) GenerateSky(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		t := float64(y) / float64(max(g.Height-1, 1))
		c := lerp(zenith, horizon, t)
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Clouds stay in the upper two thirds
	clouds := 4 + rng.Intn(4)
	for i := 0; i < clouds; i++ {
		x := rng.Intn(max(g.Width, 1))
		y := rng.Intn(max(g.Height*2/3, 1))
		g.drawCloud(img, x, y, rng)
	}

	g.drawHills(img, rng)

	return img
}

// drawCloud draws a cluster of overlapping puffs
func (g *Generator) drawCloud(img *image.RGBA, x, y int, rng *rand.Rand) {
	puffs := 3 + rng.Intn(4)
	shade := uint8(235 + rng.Intn(20))
	c := color.RGBA{shade, shade, shade, 255}

	for p := 0; p < puffs; p++ {
		radius := 8 + rng.Intn(14)
		cx := x + p*radius - puffs*radius/2
		cy := y + rng.Intn(9) - 4
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy <= radius*radius {
					g.set(img, cx+dx, cy+dy, c)
				}
			}
		}
	}
}

// drawHills draws two rolling ridgelines along the bottom edge
func (g *Generator) drawHills(img *image.RGBA, rng *rand.Rand) {
	ridges := []struct {
		height float64
		c      color.RGBA
	}{
		{height: 0.22, c: color.RGBA{120, 170, 140, 255}},
		{height: 0.12, c: color.RGBA{70, 140, 70, 255}},
	}

	for _, r := range ridges {
		phase := rng.Float64() * 2 * math.Pi
		freq := 2 + rng.Float64()*3
		base := float64(g.Height) * r.height
		for x := 0; x < g.Width; x++ {
			t := float64(x) / float64(max(g.Width, 1))
			h := base * (0.6 + 0.4*math.Sin(t*freq*2*math.Pi+phase))
			top := g.Height - int(h)
			for y := top; y < g.Height; y++ {
				g.set(img, x, y, r.c)
			}
		}
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
