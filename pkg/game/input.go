package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/roadster/pkg/vehicle"
)

// KeyMap binds ebiten keys to the driving controls.
type KeyMap = vehicle.Bindings[ebiten.Key]

// DefaultKeyMap resolves vehicle.DefaultLayout to ebiten keys.
func DefaultKeyMap() (KeyMap, error) {
	return vehicle.MapBindings(vehicle.DefaultLayout, keyByName)
}

func keyByName(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return k, fmt.Errorf("unknown key name %q: %w", name, err)
	}
	return k, nil
}

// ReadInput samples the keyboard once and returns the snapshot for this tick.
func ReadInput(m KeyMap) vehicle.Input {
	return m.Snapshot(ebiten.IsKeyPressed)
}
