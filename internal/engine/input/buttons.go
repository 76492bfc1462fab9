package input

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseX1 // "back" on most mice
	MouseX2 // "forward" on most mice
)

var mouseButtonNames = [...]string{
	MouseLeft:   "Left",
	MouseRight:  "Right",
	MouseMiddle: "Middle",
	MouseX1:     "X1",
	MouseX2:     "X2",
}

func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "MouseButton(?)"
}
