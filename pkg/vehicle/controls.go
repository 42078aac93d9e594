package vehicle

import (
	"fmt"
	"strings"
)

// ParseControls builds an Input from control names such as "up" or "boost".
// It is used to script drives without a keyboard.
func ParseControls(names []string) (Input, error) {
	var in Input
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "up", "accelerate":
			in.Accelerate = true
		case "down", "decelerate":
			in.Decelerate = true
		case "boost", "space":
			in.Boost = true
		default:
			return Input{}, fmt.Errorf("unknown control %q", name)
		}
	}
	return in, nil
}
