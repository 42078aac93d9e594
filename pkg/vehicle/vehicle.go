package vehicle

// Vehicle supplies the handling numbers used by the Controller.
type Vehicle interface {
	TopSpeed() float64
	Boost() float64
	Steering() float64
}
