// Package session ties a track, a player, the controller and the renderer
// together into one tick-driven drive.
package session

import (
	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/models"
	"github.com/golangdaddy/roadster/pkg/render"
	"github.com/golangdaddy/roadster/pkg/road"
	"github.com/golangdaddy/roadster/pkg/vehicle"
)

// Session owns the state of one drive. It is not safe for concurrent use.
type Session struct {
	track      *road.Track
	player     *models.Player
	controller *vehicle.Controller
	renderer   *render.Renderer
	ticks      int
}

// New creates a session with the player at the start line
func New(track *road.Track, controller *vehicle.Controller, renderer *render.Renderer) *Session {
	return &Session{
		track:      track,
		player:     models.NewPlayer(),
		controller: controller,
		renderer:   renderer,
	}
}

// NewFromConfig creates a session whose car, controller and renderer follow cfg.
func NewFromConfig(cfg config.Config, track *road.Track) *Session {
	controller := vehicle.NewController(cfg.Car(), cfg.Centrifugal)
	renderer := render.NewRenderer(cfg.RenderSettings(), render.DefaultPalette())
	return New(track, controller, renderer)
}

// Tick applies one tick of input to the player.
func (s *Session) Tick(in vehicle.Input) {
	s.controller.Update(s.player, in, s.track)
	s.ticks++
}

// Frame renders the road as seen from the player's current position. The
// frame is reused by the next call.
func (s *Session) Frame() *render.Frame {
	return s.renderer.Render(s.track, s.player)
}

// Step runs one full tick: input, then render.
func (s *Session) Step(in vehicle.Input) *render.Frame {
	s.Tick(in)
	return s.Frame()
}

// Player returns the live player state
func (s *Session) Player() *models.Player {
	return s.player
}

// Track returns the track being driven
func (s *Session) Track() *road.Track {
	return s.track
}

// Ticks returns how many ticks have run
func (s *Session) Ticks() int {
	return s.ticks
}

// CurrentSegment returns the index of the segment under the camera
func (s *Session) CurrentSegment() int {
	return s.track.SegmentIndexAt(s.player.TrackDistance)
}
