package input

import "github.com/Faultbox/midgard-input/pkg/math"

// ToAppSpace converts a host position (origin bottom-left, y up) into
// application space (origin at the window center, y up).
func ToAppSpace(host, window math.Vec2) math.Vec2 {
	return host.Sub(window.Scale(0.5))
}

// ToHostSpace is the inverse of ToAppSpace.
func ToHostSpace(app, window math.Vec2) math.Vec2 {
	return app.Add(window.Scale(0.5))
}

// MotionToAppSpace converts a relative movement reported with y growing
// downward into application space, where y grows upward.
func MotionToAppSpace(delta math.Vec2) math.Vec2 {
	return delta.FlipY()
}
