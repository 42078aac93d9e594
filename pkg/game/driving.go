package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadster/pkg/background"
	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/render"
	"github.com/golangdaddy/roadster/pkg/session"
	"github.com/golangdaddy/roadster/pkg/ui"
)

// DrivingScreen is the main driving view
type DrivingScreen struct {
	session *session.Session
	keys    KeyMap
	surface *ImageSurface
	sky     *ebiten.Image
	logger  *zap.Logger
	laps    int
}

// NewDrivingScreen creates the driving view for a session
func NewDrivingScreen(s *session.Session, keys KeyMap, cfg config.Config, logger *zap.Logger) *DrivingScreen {
	return &DrivingScreen{
		session: s,
		keys:    keys,
		surface: NewImageSurface(nil),
		sky:     ebiten.NewImageFromImage(background.Sky(cfg.ScreenWidth, cfg.ScreenHeight)),
		logger:  logger,
	}
}

// Update advances the session by one tick
func (ds *DrivingScreen) Update() error {
	ds.session.Tick(ReadInput(ds.keys))

	st := ds.session.Status()
	if st.Laps != ds.laps {
		ds.laps = st.Laps
		ds.logger.Info("lap",
			zap.Int("laps", st.Laps),
			zap.Float64("topSpeed", st.TopSpeed))
	}
	return nil
}

// Draw renders the road for the current player position
func (ds *DrivingScreen) Draw(screen *ebiten.Image) {
	screen.Fill(render.GroundColor)
	screen.DrawImage(ds.sky, &ebiten.DrawImageOptions{})

	ds.surface.Reset(screen)
	ds.session.Frame().Draw(ds.surface)

	st := ds.session.Status()
	ui.DrawHUD(screen, st.String(), st.Detail())
}
