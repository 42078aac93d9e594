package drive

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadster/log"
	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/game"
)

func NewDriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drive",
		Short: "opens a window and drives the highway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(config.Current)
		},
	}
	return cmd
}

// Run builds the track and blocks until the window is closed or Escape is
// pressed.
func Run(cfg config.Config) error {
	logger := log.Logger.With(zap.String("session", uuid.NewString()))

	track, err := cfg.BuildTrack()
	if err != nil {
		logger.Error("could not build track", zap.Error(err))
		return fmt.Errorf("build track: %w", err)
	}
	logger.Info("track built",
		zap.Int("segments", track.Len()),
		zap.Float64("segmentLength", track.SegmentLength()))

	g, err := game.NewGame(cfg, track, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Roadster")
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game loop failed", zap.Error(err))
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("session ended")
	return nil
}
