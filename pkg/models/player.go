package models

// Player is the driver's state for the current tick.
type Player struct {
	LateralOffset float64 // Sideways position, roughly -1..1 between the road edges
	TrackDistance float64 // Distance along the lap, always in [0, track length)
	Speed         float64 // Distance covered this tick, recomputed from input

	Stats PlayerStats
}

// PlayerStats accumulates over a drive
type PlayerStats struct {
	DistanceDriven float64 // Total distance covered in either direction
	TopSpeed       float64 // Highest absolute per-tick speed seen
	Laps           int     // Net laps completed; reversing over the line takes one back
}

// NewPlayer creates a player on the centre line at the start of the lap
func NewPlayer() *Player {
	return &Player{}
}

// RecordTick folds this tick's speed into the stats
func (p *Player) RecordTick() {
	speed := p.Speed
	if speed < 0 {
		speed = -speed
	}
	p.Stats.DistanceDriven += speed
	p.UpdateTopSpeed(speed)
}

// UpdateTopSpeed updates the top speed if a new record is set
func (p *Player) UpdateTopSpeed(speed float64) {
	if speed > p.Stats.TopSpeed {
		p.Stats.TopSpeed = speed
	}
}
