package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/roadster/pkg/models/car"
	"github.com/golangdaddy/roadster/pkg/projection"
	"github.com/golangdaddy/roadster/pkg/render"
	"github.com/golangdaddy/roadster/pkg/road"
	"github.com/golangdaddy/roadster/pkg/vehicle"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every construction parameter. All values are fixed at startup.
//
//nolint:lll // readability
type Config struct {
	ScreenWidth     int     // window width in pixels
	ScreenHeight    int     // window height in pixels
	RoadWidth       float64 // half width of the road in world units
	SegmentLength   float64 // world length of one segment
	SegmentCount    int     // number of segments in one lap
	CameraDepth     float64 // depth constant of the perspective divide
	CameraHeight    float64 // eye height above the road
	DrawDistance    int     // segments walked per frame
	RumbleScale     float64 // rumble strip width relative to the road
	BaseSpeed       float64 // distance per tick with the throttle held
	BoostMultiplier float64 // speed multiplier while boosting
	SteerStep       float64 // lateral offset change per tick of steering
	Centrifugal     float64 // strength of the outward push on curves
	LogLevel        string  // zap log level
	LogFormat       string  // text vs json
}

// Current holds the values resolved from flags, environment and config file.
var Current = Default()

// Default returns the stock configuration
func Default() Config {
	return Config{
		ScreenWidth:     1024,
		ScreenHeight:    768,
		RoadWidth:       3000,
		SegmentLength:   200,
		SegmentCount:    1600,
		CameraDepth:     0.84,
		CameraHeight:    1800,
		DrawDistance:    300,
		RumbleScale:     render.DefaultRumbleScale,
		BaseSpeed:       120,
		BoostMultiplier: 3,
		SteerStep:       0.2,
		Centrifugal:     vehicle.DefaultCentrifugal,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Validate checks that the configuration can build a track and a renderer.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.ScreenWidth > 0, "screen width must be positive, got %d", c.ScreenWidth)
	check(c.ScreenHeight > 0, "screen height must be positive, got %d", c.ScreenHeight)
	check(c.RoadWidth > 0, "road width must be positive, got %v", c.RoadWidth)
	check(c.SegmentLength > 0, "segment length must be positive, got %v", c.SegmentLength)
	check(c.SegmentCount > 0, "segment count must be positive, got %d", c.SegmentCount)
	check(c.CameraDepth > 0, "camera depth must be positive, got %v", c.CameraDepth)
	check(c.DrawDistance > 0, "draw distance must be positive, got %d", c.DrawDistance)
	check(c.RumbleScale >= 1, "rumble scale must be at least 1, got %v", c.RumbleScale)
	check(c.BaseSpeed >= 0, "base speed must not be negative, got %v", c.BaseSpeed)
	check(c.BoostMultiplier > 0, "boost multiplier must be positive, got %v", c.BoostMultiplier)
	check(c.LogFormat == "text" || c.LogFormat == "json", "log format must be text or json, got %q", c.LogFormat)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Viewport returns the screen size as a projection viewport
func (c Config) Viewport() projection.Viewport {
	return projection.Viewport{
		Width:  float64(c.ScreenWidth),
		Height: float64(c.ScreenHeight),
	}
}

// RenderSettings returns the renderer parameters
func (c Config) RenderSettings() render.Settings {
	return render.Settings{
		Screen:       c.Viewport(),
		RoadWidth:    c.RoadWidth,
		CameraDepth:  c.CameraDepth,
		CameraHeight: c.CameraHeight,
		DrawDistance: c.DrawDistance,
		RumbleScale:  c.RumbleScale,
	}
}

// Car returns the player's car with the configured handling
func (c Config) Car() *car.Car {
	return &car.Car{
		Name:            "Roadster",
		BaseSpeed:       c.BaseSpeed,
		BoostMultiplier: c.BoostMultiplier,
		SteerStep:       c.SteerStep,
	}
}

// BuildTrack builds the stock track with the configured segment count and length
func (c Config) BuildTrack() (*road.Track, error) {
	return road.BuildTrack(c.SegmentCount, c.SegmentLength, road.ReferenceProfile())
}
