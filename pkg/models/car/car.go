package car

// Car holds the handling numbers the controller drives with.
type Car struct {
	Name            string
	BaseSpeed       float64 // Distance per tick with the throttle held
	BoostMultiplier float64 // Applied on top of the selected speed
	SteerStep       float64 // Lateral offset change per tick of steering
}

// NewCar creates a car with the stock arcade handling
func NewCar(name string) *Car {
	return &Car{
		Name:            name,
		BaseSpeed:       120,
		BoostMultiplier: 3,
		SteerStep:       0.2,
	}
}

func (c *Car) TopSpeed() float64 {
	return c.BaseSpeed
}

func (c *Car) Boost() float64 {
	return c.BoostMultiplier
}

func (c *Car) Steering() float64 {
	return c.SteerStep
}
