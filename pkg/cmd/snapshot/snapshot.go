package snapshot

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadster/log"
	"github.com/golangdaddy/roadster/pkg/background"
	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/render"
	"github.com/golangdaddy/roadster/pkg/session"
	"github.com/golangdaddy/roadster/pkg/surface"
	"github.com/golangdaddy/roadster/pkg/vehicle"
)

// Options describes a scripted drive
type Options struct {
	Ticks int      // ticks to run before the frame is taken
	Keys  []string // controls held on every tick
	Start float64  // track distance to start from
	Sky   bool     // draw the sky behind the road
	Out   string   // PNG output path
}

var cliOpts Options

func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "drives a scripted number of ticks and writes the last frame as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(config.Current, cliOpts)
		},
	}

	cmd.Flags().IntVarP(&cliOpts.Ticks, "ticks", "n", 60,
		"number of ticks to drive")
	cmd.Flags().StringSliceVarP(&cliOpts.Keys, "keys", "k", []string{"up"},
		"controls held on every tick (left, right, up, down, boost)")
	cmd.Flags().Float64Var(&cliOpts.Start, "start", 0,
		"track distance to start from")
	cmd.Flags().BoolVar(&cliOpts.Sky, "sky", true,
		"draw the sky behind the road")
	cmd.Flags().StringVarP(&cliOpts.Out, "out", "o", "roadster.png",
		"output file")

	return cmd
}

// Run drives the scripted session and writes the resulting frame to opts.Out.
func Run(cfg config.Config, opts Options) error {
	track, err := cfg.BuildTrack()
	if err != nil {
		log.Logger.Error("could not build track", zap.Error(err))
		return fmt.Errorf("build track: %w", err)
	}

	canvas, st, err := Render(cfg, session.NewFromConfig(cfg, track), opts)
	if err != nil {
		log.Logger.Error("could not render snapshot", zap.Error(err))
		return err
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.Out, err)
	}
	defer f.Close()
	if err := canvas.WritePNG(f); err != nil {
		return err
	}

	log.Logger.Info("snapshot written",
		zap.String("file", opts.Out),
		zap.Int("ticks", opts.Ticks),
		zap.Float64("trackDistance", st.TrackDistance),
		zap.Int("segment", st.Segment))
	return nil
}

// Render runs opts.Ticks ticks of s with the same held controls and draws the
// final frame on an offscreen canvas.
func Render(cfg config.Config, s *session.Session, opts Options) (*surface.Canvas, session.Status, error) {
	in, err := vehicle.ParseControls(opts.Keys)
	if err != nil {
		return nil, session.Status{}, fmt.Errorf("parse keys: %w", err)
	}
	if opts.Ticks < 0 {
		return nil, session.Status{}, fmt.Errorf("ticks must not be negative, got %d", opts.Ticks)
	}

	s.Player().TrackDistance = s.Track().Wrap(opts.Start)
	for i := 0; i < opts.Ticks; i++ {
		s.Tick(in)
	}

	canvas := surface.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight, render.GroundColor)
	if opts.Sky {
		canvas.DrawImage(background.Sky(cfg.ScreenWidth, cfg.ScreenHeight), image.Point{})
	}
	s.Frame().Draw(canvas)

	return canvas, s.Status(), nil
}
