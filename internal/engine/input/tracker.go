package input

// Tracker is the host-side level/edge bookkeeping for one family of
// buttons. The backend feeds it every transition as it arrives and calls
// Clear at the start of each frame.
//
// A button reports at most one edge per frame, the first one seen; pressed
// always reflects the latest level. A press and release inside one frame is
// therefore a just-pressed button that is no longer pressed, and the edge
// sets stay disjoint.
type Tracker[T comparable] struct {
	pressed      set[T]
	justPressed  set[T]
	justReleased set[T]
}

// NewTracker returns an empty tracker.
func NewTracker[T comparable]() *Tracker[T] {
	return &Tracker[T]{
		pressed:      make(set[T]),
		justPressed:  make(set[T]),
		justReleased: make(set[T]),
	}
}

// Press records b going down.
func (t *Tracker[T]) Press(b T) {
	if t.pressed.has(b) {
		return
	}
	t.pressed[b] = struct{}{}
	if !t.justReleased.has(b) {
		t.justPressed[b] = struct{}{}
	}
}

// Release records b going up.
func (t *Tracker[T]) Release(b T) {
	if !t.pressed.has(b) {
		return
	}
	delete(t.pressed, b)
	if !t.justPressed.has(b) {
		t.justReleased[b] = struct{}{}
	}
}

// Apply records a transition.
func (t *Tracker[T]) Apply(b T, s ElementState) {
	if s == Pressed {
		t.Press(b)
	} else {
		t.Release(b)
	}
}

// Clear forgets this frame's edges. Held buttons stay held.
func (t *Tracker[T]) Clear() {
	clear(t.justPressed)
	clear(t.justReleased)
}

// Reset releases everything without reporting edges, e.g. after the window
// lost focus and the host stopped delivering key-up events.
func (t *Tracker[T]) Reset() {
	clear(t.pressed)
	t.Clear()
}

// Snapshot returns the current sets in freshly allocated slices. Their
// order is unspecified.
func (t *Tracker[T]) Snapshot() ButtonSnapshot[T] {
	var snap ButtonSnapshot[T]
	t.SnapshotInto(&snap)
	return snap
}

// SnapshotInto writes the current sets into dst, reusing its backing arrays.
func (t *Tracker[T]) SnapshotInto(dst *ButtonSnapshot[T]) {
	dst.Pressed = appendKeys(dst.Pressed[:0], t.pressed)
	dst.JustPressed = appendKeys(dst.JustPressed[:0], t.justPressed)
	dst.JustReleased = appendKeys(dst.JustReleased[:0], t.justReleased)
}

func appendKeys[T comparable](dst []T, s set[T]) []T {
	for k := range s {
		dst = append(dst, k)
	}
	return dst
}
