package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadster/log"
	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/road"
	"github.com/golangdaddy/roadster/pkg/trackplot"
)

var outputDir string

func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "summarises the track and charts its curvature and elevation",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := Run(config.Current, outputDir)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out", "o", "profile",
		"directory for the chart files")

	return cmd
}

// Run logs the track summary and writes its charts into dir.
func Run(cfg config.Config, dir string) (road.Summary, error) {
	track, err := cfg.BuildTrack()
	if err != nil {
		log.Logger.Error("could not build track", zap.Error(err))
		return road.Summary{}, fmt.Errorf("build track: %w", err)
	}

	sum := road.Summarize(track)
	log.Logger.Info("track summary",
		zap.Int("segments", sum.Segments),
		zap.Float64("length", sum.Length),
		zap.Float64("minElevation", sum.MinElevation),
		zap.Float64("maxElevation", sum.MaxElevation),
		zap.Int("curvedSegments", sum.CurvedSegments),
		zap.Float64("totalCurve", sum.TotalCurve),
		zap.Float64("maxAbsCurve", sum.MaxAbsCurve))

	p, err := trackplot.New(dir)
	if err != nil {
		return sum, err
	}
	paths, err := p.Write(track)
	if err != nil {
		log.Logger.Error("could not write charts", zap.Error(err))
		return sum, err
	}
	log.Logger.Info("charts written", zap.Strings("files", paths))
	return sum, nil
}
