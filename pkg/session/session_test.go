package session

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/models/car"
	"github.com/golangdaddy/roadster/pkg/projection"
	"github.com/golangdaddy/roadster/pkg/render"
	"github.com/golangdaddy/roadster/pkg/road"
	"github.com/golangdaddy/roadster/pkg/vehicle"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	track, err := road.BuildTrack(1600, 200, road.ReferenceProfile())
	require.NoError(t, err)

	controller := vehicle.NewController(car.NewCar("test"), vehicle.DefaultCentrifugal)
	renderer := render.NewRenderer(render.Settings{
		Screen:       projection.Viewport{Width: 1024, Height: 768},
		RoadWidth:    3000,
		CameraDepth:  0.84,
		CameraHeight: 1800,
		DrawDistance: 300,
	}, render.DefaultPalette())

	return New(track, controller, renderer)
}

func randomInputs(seed int64, n int) []vehicle.Input {
	rng := rand.New(rand.NewSource(seed))
	inputs := make([]vehicle.Input, n)
	for i := range inputs {
		inputs[i] = vehicle.Input{
			Left:       rng.Intn(4) == 0,
			Right:      rng.Intn(4) == 0,
			Accelerate: rng.Intn(3) != 0,
			Decelerate: rng.Intn(8) == 0,
			Boost:      rng.Intn(3) == 0,
		}
	}
	return inputs
}

func TestSessionStartsOnTheLine(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, 0.0, s.Player().TrackDistance)
	assert.Equal(t, 0, s.CurrentSegment())
	assert.Equal(t, 0, s.Ticks())
}

func TestSessionTenTicksForward(t *testing.T) {
	s := newSession(t)

	var f *render.Frame
	for i := 0; i < 10; i++ {
		f = s.Step(vehicle.Input{Accelerate: true})
	}

	assert.Equal(t, 10, s.Ticks())
	assert.Equal(t, 1200.0, s.Player().TrackDistance)
	assert.Equal(t, 6, s.CurrentSegment())
	assert.Equal(t, 6, f.CurrentSegment)
}

func TestSessionDeterministic(t *testing.T) {
	inputs := randomInputs(99, 400)
	a, b := newSession(t), newSession(t)

	for i, in := range inputs {
		fa := a.Step(in)
		fb := b.Step(in)
		if diff := cmp.Diff(fa.Polygons, fb.Polygons); diff != "" {
			t.Fatalf("tick %d: polygons differ:\n%s", i, diff)
		}
	}
	assert.Equal(t, *a.Player(), *b.Player())
}

func TestSessionStatus(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "pos: 0.0 | segment: 0", s.Status().String())

	for i := 0; i < 10; i++ {
		s.Tick(vehicle.Input{Accelerate: true})
	}
	s.Tick(vehicle.Input{Accelerate: true, Boost: true})

	st := s.Status()
	assert.Equal(t, "pos: 1560.0 | segment: 7", st.String())
	assert.Equal(t, "speed: 360 | lap: 0 | top: 360", st.Detail())
}

func TestNewFromConfigMatchesManualWiring(t *testing.T) {
	track, err := road.BuildTrack(1600, 200, road.ReferenceProfile())
	require.NoError(t, err)

	a := NewFromConfig(config.Default(), track)
	b := newSession(t)
	for _, in := range randomInputs(3, 120) {
		a.Tick(in)
		b.Tick(in)
	}
	assert.Equal(t, *b.Player(), *a.Player())
	if diff := cmp.Diff(b.Frame().Polygons, a.Frame().Polygons); diff != "" {
		t.Errorf("frames differ (-manual +config):\n%s", diff)
	}
}
