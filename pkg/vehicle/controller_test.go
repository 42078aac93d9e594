package vehicle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadster/pkg/models"
	"github.com/golangdaddy/roadster/pkg/models/car"
	"github.com/golangdaddy/roadster/pkg/road"
)

func newTestController() *Controller {
	return NewController(car.NewCar("test"), DefaultCentrifugal)
}

func straightTrack(t *testing.T) *road.Track {
	t.Helper()
	track, err := road.BuildTrack(1600, 200, road.Profile{})
	require.NoError(t, err)
	return track
}

func TestControllerSpeed(t *testing.T) {
	c := newTestController()

	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{name: "idle", in: Input{}, want: 0},
		{name: "accelerate", in: Input{Accelerate: true}, want: 120},
		{name: "decelerate", in: Input{Decelerate: true}, want: -120},
		{name: "both pedals brake", in: Input{Accelerate: true, Decelerate: true}, want: -120},
		{name: "boost forward", in: Input{Accelerate: true, Boost: true}, want: 360},
		{name: "boost reverse", in: Input{Decelerate: true, Boost: true}, want: -360},
		{name: "boost alone", in: Input{Boost: true}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Speed(tt.in))
		})
	}
}

func TestControllerTenTicksForward(t *testing.T) {
	c := newTestController()
	track := straightTrack(t)
	p := models.NewPlayer()

	for i := 0; i < 10; i++ {
		c.Update(p, Input{Accelerate: true}, track)
	}

	assert.Equal(t, 1200.0, p.TrackDistance)
	assert.Equal(t, 6, track.SegmentIndexAt(p.TrackDistance))
	assert.Equal(t, 0.0, p.LateralOffset)
	assert.Equal(t, 1200.0, p.Stats.DistanceDriven)
	assert.Equal(t, 120.0, p.Stats.TopSpeed)
}

func TestControllerNoMomentum(t *testing.T) {
	c := newTestController()
	track := straightTrack(t)
	p := models.NewPlayer()

	c.Update(p, Input{Accelerate: true, Boost: true}, track)
	c.Update(p, Input{}, track)

	assert.Equal(t, 0.0, p.Speed)
	assert.Equal(t, 360.0, p.TrackDistance)
}

func TestControllerSteering(t *testing.T) {
	c := newTestController()
	track := straightTrack(t)
	p := models.NewPlayer()

	c.Update(p, Input{Right: true}, track)
	c.Update(p, Input{Right: true}, track)
	assert.InDelta(t, 0.4, p.LateralOffset, 1e-12)

	c.Update(p, Input{Left: true}, track)
	assert.InDelta(t, 0.2, p.LateralOffset, 1e-12)

	c.Update(p, Input{Left: true, Right: true}, track)
	assert.InDelta(t, 0.2, p.LateralOffset, 1e-12)

	// No clamp at the road edge
	for i := 0; i < 20; i++ {
		c.Update(p, Input{Right: true}, track)
	}
	assert.InDelta(t, 4.2, p.LateralOffset, 1e-9)
}

func TestControllerWrapsBackwards(t *testing.T) {
	c := newTestController()
	track := straightTrack(t)
	p := models.NewPlayer()

	c.Update(p, Input{Decelerate: true}, track)

	assert.Equal(t, track.Length()-120, p.TrackDistance)
	assert.Equal(t, -1, p.Stats.Laps)
}

func TestControllerCountsLaps(t *testing.T) {
	c := newTestController()
	track := straightTrack(t)
	p := &models.Player{TrackDistance: track.Length() - 100}

	c.Update(p, Input{Accelerate: true}, track)

	assert.Equal(t, 20.0, p.TrackDistance)
	assert.Equal(t, 1, p.Stats.Laps)
}

func TestControllerWrapStaysOnLap(t *testing.T) {
	track := straightTrack(t)
	rng := rand.New(rand.NewSource(7))
	p := models.NewPlayer()

	for i := 0; i < 2000; i++ {
		speed := (rng.Float64()*2 - 1) * 1e7
		c := NewController(&car.Car{BaseSpeed: speed, BoostMultiplier: 3, SteerStep: 0.2}, DefaultCentrifugal)
		c.Update(p, Input{Accelerate: true, Boost: rng.Intn(2) == 0}, track)

		require.GreaterOrEqual(t, p.TrackDistance, 0.0)
		require.Less(t, p.TrackDistance, track.Length())
	}
}

func TestControllerCentrifugalDrift(t *testing.T) {
	profile := road.Profile{
		Curves: []road.CurveRule{{Segments: road.Range{After: 9, Before: 20}, Curve: 2}},
	}
	track, err := road.BuildTrack(100, 200, profile)
	require.NoError(t, err)
	c := newTestController()

	// Moving from segment 9 into segment 10: the curve of the segment the
	// player lands on is applied.
	p := &models.Player{TrackDistance: 9*200 + 150}
	c.Update(p, Input{Accelerate: true}, track)
	assert.Equal(t, 10, track.SegmentIndexAt(p.TrackDistance))
	assert.InDelta(t, -(120.0/200)*2*DefaultCentrifugal, p.LateralOffset, 1e-15)

	// Leaving the curve: landing on a straight segment adds no drift.
	p = &models.Player{TrackDistance: 19*200 + 150}
	c.Update(p, Input{Accelerate: true}, track)
	assert.Equal(t, 0.0, p.LateralOffset)

	// Reversing through a curve pushes the other way.
	p = &models.Player{TrackDistance: 15 * 200}
	c.Update(p, Input{Decelerate: true}, track)
	assert.InDelta(t, (120.0/200)*2*DefaultCentrifugal, p.LateralOffset, 1e-15)
	assert.False(t, math.IsNaN(p.LateralOffset))
}

func TestParseControls(t *testing.T) {
	in, err := ParseControls([]string{"up", " Boost ", "left"})
	require.NoError(t, err)
	assert.Equal(t, Input{Accelerate: true, Boost: true, Left: true}, in)
	assert.True(t, in.Longitudinal())

	in, err = ParseControls(nil)
	require.NoError(t, err)
	assert.Equal(t, Input{}, in)

	_, err = ParseControls([]string{"jump"})
	assert.Error(t, err)
}
