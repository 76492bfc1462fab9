package input

import (
	"testing"

	"github.com/Faultbox/midgard-input/pkg/math"
)

func TestToAppSpace(t *testing.T) {
	window := math.Vec2{X: 800, Y: 600}
	tests := []struct {
		host, want math.Vec2
	}{
		{math.Vec2{X: 800, Y: 300}, math.Vec2{X: 400, Y: 0}},
		{math.Vec2{X: 400, Y: 300}, math.Vec2{X: 0, Y: 0}},
		{math.Vec2{X: 0, Y: 0}, math.Vec2{X: -400, Y: -300}},
		{math.Vec2{X: 800, Y: 600}, math.Vec2{X: 400, Y: 300}},
	}

	for _, tt := range tests {
		if got := ToAppSpace(tt.host, window); got != tt.want {
			t.Errorf("ToAppSpace(%v) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	windows := []math.Vec2{{X: 800, Y: 600}, {X: 1280, Y: 720}, {X: 333, Y: 111}}
	points := []math.Vec2{{X: 0, Y: 0}, {X: 12.5, Y: 99.25}, {X: 640, Y: 1}, {X: -5, Y: 700}}

	for _, w := range windows {
		for _, p := range points {
			if got := ToHostSpace(ToAppSpace(p, w), w); got != p {
				t.Errorf("ToHostSpace(ToAppSpace(%v, %v)) = %v", p, w, got)
			}
		}
	}
}

func TestMotionToAppSpace(t *testing.T) {
	got := MotionToAppSpace(math.Vec2{X: 3, Y: 5})
	want := math.Vec2{X: 3, Y: -5}
	if got != want {
		t.Errorf("MotionToAppSpace() = %v, want %v", got, want)
	}
}
