package vehicle

// Input is the set of controls held down during one tick. It is built once per
// tick and never mutated afterwards.
type Input struct {
	Left       bool
	Right      bool
	Accelerate bool
	Decelerate bool
	Boost      bool
}

// Longitudinal reports whether either pedal is held
func (in Input) Longitudinal() bool {
	return in.Accelerate || in.Decelerate
}
