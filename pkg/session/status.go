package session

import "fmt"

// Status is the HUD readout for the current tick.
type Status struct {
	TrackDistance float64
	Segment       int
	Speed         float64
	Laps          int
	TopSpeed      float64
}

// Status returns the readout for the player's current position
func (s *Session) Status() Status {
	return Status{
		TrackDistance: s.player.TrackDistance,
		Segment:       s.CurrentSegment(),
		Speed:         s.player.Speed,
		Laps:          s.player.Stats.Laps,
		TopSpeed:      s.player.Stats.TopSpeed,
	}
}

func (st Status) String() string {
	return fmt.Sprintf("pos: %.1f | segment: %d", st.TrackDistance, st.Segment)
}

// Detail is the second HUD line
func (st Status) Detail() string {
	return fmt.Sprintf("speed: %.0f | lap: %d | top: %.0f", st.Speed, st.Laps, st.TopSpeed)
}
