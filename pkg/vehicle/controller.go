package vehicle

import (
	"math"

	"github.com/golangdaddy/roadster/pkg/models"
	"github.com/golangdaddy/roadster/pkg/road"
)

// DefaultCentrifugal is the stock strength of the outward push on curves.
const DefaultCentrifugal = 0.0008

// Controller integrates per-tick input into the player's position.
type Controller struct {
	vehicle     Vehicle
	centrifugal float64
}

// NewController creates a controller for the given vehicle
func NewController(v Vehicle, centrifugal float64) *Controller {
	return &Controller{
		vehicle:     v,
		centrifugal: centrifugal,
	}
}

// Speed returns the distance covered this tick for the held controls. There
// is no momentum: releasing the pedals stops the car on the next tick.
func (c *Controller) Speed(in Input) float64 {
	if !in.Longitudinal() {
		return 0
	}
	speed := c.vehicle.TopSpeed()
	// Braking wins when both pedals are down
	if in.Decelerate {
		speed = -speed
	}
	if in.Boost {
		speed *= c.vehicle.Boost()
	}
	return speed
}

// Update advances the player by one tick.
func (c *Controller) Update(p *models.Player, in Input, track *road.Track) {
	// Steering is a direct nudge while the key is held
	if in.Right {
		p.LateralOffset += c.vehicle.Steering()
	}
	if in.Left {
		p.LateralOffset -= c.vehicle.Steering()
	}

	p.Speed = c.Speed(in)

	moved := p.TrackDistance + p.Speed
	p.Stats.Laps += int(math.Floor(moved / track.Length()))
	p.TrackDistance = track.Wrap(moved)

	// Centrifugal drift uses the segment the camera sits on this frame
	seg := track.At(track.SegmentIndexAt(p.TrackDistance))
	p.LateralOffset -= (p.Speed / track.SegmentLength()) * seg.Curve * c.centrifugal

	p.RecordTick()
}
