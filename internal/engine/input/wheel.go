package input

import "github.com/Faultbox/midgard-input/pkg/math"

// WheelState is a frame's wheel movement collapsed to a direction per axis.
// Each component is -1, 0 or 1.
type WheelState struct {
	// Y is the regular scroll direction.
	Y float32
	// X is horizontal scrolling (tilt wheels, or shift+scroll on most mice).
	X float32
}

// NormalizeWheel sums the deltas of events per axis and keeps only the sign
// of each sum. No events gives the zero state.
func NormalizeWheel(events []WheelEvent) WheelState {
	var x, y float32
	for _, ev := range events {
		x += ev.X
		y += ev.Y
	}
	return WheelState{X: math.Sign(x), Y: math.Sign(y)}
}
