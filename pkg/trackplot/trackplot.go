// Package trackplot charts the authored shape of a track.
package trackplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/golangdaddy/roadster/pkg/road"
)

// Chart file names inside the output directory
const (
	CurveFile     = "track_curve.png"
	ElevationFile = "track_elevation.png"
)

var (
	curveColor     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	elevationColor = color.RGBA{0x00, 0x9a, 0x00, 0xff}
)

// Plotter writes per-segment charts of a track as PNG files.
type Plotter struct {
	outputDir string
	width     vg.Length
	height    vg.Length
}

// New creates a plotter writing into outputDir, creating it if needed.
func New(outputDir string) (*Plotter, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Plotter{
		outputDir: outputDir,
		width:     14 * vg.Inch,
		height:    6 * vg.Inch,
	}, nil
}

// Write renders the curve and elevation charts and returns their paths.
func (p *Plotter) Write(t *road.Track) ([]string, error) {
	segs := t.Segments()
	curve := make(plotter.XYs, len(segs))
	elevation := make(plotter.XYs, len(segs))
	for i, s := range segs {
		curve[i] = plotter.XY{X: float64(s.Index), Y: s.Curve}
		elevation[i] = plotter.XY{X: float64(s.Index), Y: s.WorldY}
	}

	charts := []struct {
		file   string
		title  string
		yLabel string
		pts    plotter.XYs
		color  color.Color
	}{
		{CurveFile, "Curvature per segment", "curve", curve, curveColor},
		{ElevationFile, "Elevation per segment", "world y", elevation, elevationColor},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(p.outputDir, c.file)
		if err := p.save(path, c.title, c.yLabel, c.pts, c.color); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (p *Plotter) save(path, title, yLabel string, pts plotter.XYs, c color.Color) error {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "segment"
	pl.Y.Label.Text = yLabel
	pl.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line for %s: %w", title, err)
	}
	line.Width = vg.Points(1)
	line.Color = c
	pl.Add(line)

	if err := pl.Save(p.width, p.height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
