package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/road"
	"github.com/golangdaddy/roadster/pkg/session"
	"github.com/golangdaddy/roadster/pkg/ui"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           config.Config
	track         *road.Track
	keys          KeyMap
	logger        *zap.Logger
	currentScreen Screen
}

// NewGame creates a new game instance starting at the title screen
func NewGame(cfg config.Config, track *road.Track, logger *zap.Logger) (*Game, error) {
	keys, err := DefaultKeyMap()
	if err != nil {
		return nil, fmt.Errorf("key map: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		track:  track,
		keys:   keys,
		logger: logger,
	}
	g.currentScreen = ui.NewTitleScreen(g.startDriving)
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the configured logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// startDriving puts a fresh player on the start line
func (g *Game) startDriving() {
	s := session.NewFromConfig(g.cfg, g.track)

	g.logger.Info("driving started",
		zap.String("car", g.cfg.Car().Name),
		zap.Int("segments", g.track.Len()),
		zap.Float64("lapLength", g.track.Length()))
	g.currentScreen = NewDrivingScreen(s, g.keys, g.cfg, g.logger)
}
