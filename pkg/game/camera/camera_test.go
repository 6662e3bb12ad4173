package camera

import (
	"testing"

	"malefactor/pkg/engine/world"
)

func TestScreenBoundsScenario(t *testing.T) {
	got := ScreenBounds(world.Pt(40, 25), Viewport{W: 80, H: 50})
	want := Frame{MinX: 0, MaxX: 80, MinY: 0, MaxY: 50}
	if got != want {
		t.Errorf("ScreenBounds = %+v, want %+v", got, want)
	}
	if got.Width() != 80 || got.Height() != 50 {
		t.Errorf("frame size = %dx%d, want 80x50", got.Width(), got.Height())
	}
}

func TestScreenBoundsOddViewport(t *testing.T) {
	got := ScreenBounds(world.Pt(3, 3), Viewport{W: 7, H: 5})
	want := Frame{MinX: 0, MaxX: 7, MinY: 1, MaxY: 6}
	if got != want {
		t.Errorf("ScreenBounds = %+v, want %+v", got, want)
	}
}

func TestMapScreenRoundTrip(t *testing.T) {
	focuses := []world.Point{{X: 0, Y: 0}, {X: 40, Y: 25}, {X: -7, Y: 3}, {X: 1000, Y: -1000}}
	viewports := []Viewport{{W: 80, H: 50}, {W: 1, H: 1}, {W: 13, H: 7}, {W: 0, H: 0}}
	for _, focus := range focuses {
		for _, vp := range viewports {
			for x := -20; x <= 20; x += 3 {
				for y := -20; y <= 20; y += 3 {
					p := world.Pt(x, y)
					s := MapToScreen(focus, vp, p)
					if got := ScreenToMap(focus, vp, s); got != p {
						t.Fatalf("round trip focus=%v vp=%+v: %v -> %v -> %v", focus, vp, p, s, got)
					}
					if got := MapToScreen(focus, vp, ScreenToMap(focus, vp, p)); got != p {
						t.Fatalf("inverse round trip focus=%v vp=%+v: %v -> %v", focus, vp, p, got)
					}
				}
			}
		}
	}
}

func TestMapToScreenCentresFocus(t *testing.T) {
	focus := world.Pt(57, 12)
	vp := Viewport{W: 80, H: 50}
	if got := MapToScreen(focus, vp, focus); got != world.Pt(40, 25) {
		t.Errorf("MapToScreen(focus) = %v, want (40,25)", got)
	}
}

func TestInBounds(t *testing.T) {
	focus := world.Pt(40, 25)
	vp := Viewport{W: 80, H: 50}
	tests := []struct {
		x, y int
		want bool
	}{
		{40, 25, true},
		{2, 2, true},
		{77, 47, true},
		{1, 25, false},
		{40, 1, false},
		{78, 25, true},
		{79, 25, false},
		{40, 48, true},
		{40, 49, false},
		{0, 0, false},
		{-5, 25, false},
	}
	for _, tt := range tests {
		if got := InBounds(focus, vp, tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
