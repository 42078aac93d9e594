package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
	line           *ebiten.Image
}

// Thickness of the decorative rules in pixels
const lineThickness = 2

var lineColor = color.RGBA{50, 60, 80, 100}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	line := ebiten.NewImage(1, lineThickness)
	line.Fill(lineColor)

	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
		line:           line,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Title pulses between 1.0 and 1.1 of its base size
	pulse := 1.0 + 0.1*math.Sin(elapsed*2)
	brightness := math.Min(1, 1+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawCentered(screen, "ROADSTER", centerX, centerY, 8*pulse, titleColor)
	drawCentered(screen, "Endless Highway", centerX, centerY+80, 2, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}

	controls := "ARROWS drive   SPACE boost   ESC quit"
	drawCentered(screen, controls, centerX, float64(height)-60, 1, color.RGBA{120, 130, 150, 255})

	ts.drawDecorativeLines(screen, width, height)
}

// drawCentered draws str horizontally centered on centerX with its top at y.
func drawCentered(screen *ebiten.Image, str string, centerX, y, scale float64, clr color.Color) {
	face := text.NewGoXFace(bitmapfont.Face)
	w := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawDecorativeLines stretches the one-pixel rule across the screen
func (ts *TitleScreen) drawDecorativeLines(screen *ebiten.Image, width, height int) {
	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(width), 1)
		op.GeoM.Translate(0, y)
		screen.DrawImage(ts.line, op)
	}
}
