package vehicle

import "fmt"

// Bindings lists the keys bound to each control. Any bound key counts as the
// control being held. K is the key type of the input backend.
type Bindings[K comparable] struct {
	Left       []K
	Right      []K
	Accelerate []K
	Decelerate []K
	Boost      []K
}

// DefaultLayout names the stock keys: arrows and WASD to drive, space to boost.
var DefaultLayout = Bindings[string]{
	Left:       []string{"ArrowLeft", "A"},
	Right:      []string{"ArrowRight", "D"},
	Accelerate: []string{"ArrowUp", "W"},
	Decelerate: []string{"ArrowDown", "S"},
	Boost:      []string{"Space"},
}

// Snapshot samples pressed once per bound key and returns the input for this
// tick.
func (b Bindings[K]) Snapshot(pressed func(K) bool) Input {
	held := func(keys []K) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return Input{
		Left:       held(b.Left),
		Right:      held(b.Right),
		Accelerate: held(b.Accelerate),
		Decelerate: held(b.Decelerate),
		Boost:      held(b.Boost),
	}
}

// MapBindings converts every key in b with conv.
func MapBindings[K, L comparable](b Bindings[K], conv func(K) (L, error)) (Bindings[L], error) {
	var err error
	mapKeys := func(keys []K) []L {
		out := make([]L, 0, len(keys))
		for _, k := range keys {
			l, cerr := conv(k)
			if cerr != nil {
				if err == nil {
					err = fmt.Errorf("key %v: %w", k, cerr)
				}
				continue
			}
			out = append(out, l)
		}
		return out
	}

	out := Bindings[L]{
		Left:       mapKeys(b.Left),
		Right:      mapKeys(b.Right),
		Accelerate: mapKeys(b.Accelerate),
		Decelerate: mapKeys(b.Decelerate),
		Boost:      mapKeys(b.Boost),
	}
	if err != nil {
		return Bindings[L]{}, err
	}
	return out, nil
}
