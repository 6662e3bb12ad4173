// Package camera projects the map onto a fixed-size character screen
// centred on a focus point, normally the player.
package camera

import "malefactor/pkg/engine/world"

// Viewport is the screen size in character cells.
type Viewport struct {
	W, H int
}

// Frame is the map-space window shown on screen: [MinX, MaxX) x [MinY, MaxY).
type Frame struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns MaxX - MinX
func (f Frame) Width() int {
	return f.MaxX - f.MinX
}

// Height returns MaxY - MinY
func (f Frame) Height() int {
	return f.MaxY - f.MinY
}

// ScreenBounds centres a vp-sized window on focus.
func ScreenBounds(focus world.Point, vp Viewport) Frame {
	minX := focus.X - vp.W/2
	minY := focus.Y - vp.H/2
	return Frame{
		MinX: minX,
		MaxX: minX + vp.W,
		MinY: minY,
		MaxY: minY + vp.H,
	}
}

// MapToScreen converts a map coordinate to a screen coordinate.
func MapToScreen(focus world.Point, vp Viewport, p world.Point) world.Point {
	f := ScreenBounds(focus, vp)
	return world.Pt(p.X-f.MinX, p.Y-f.MinY)
}

// ScreenToMap converts a screen coordinate to a map coordinate. It is the
// exact inverse of MapToScreen.
func ScreenToMap(focus world.Point, vp Viewport, p world.Point) world.Point {
	f := ScreenBounds(focus, vp)
	return world.Pt(p.X+f.MinX, p.Y+f.MinY)
}

// InBounds reports whether map point x, y lands strictly inside the screen,
// keeping one cell of margin on every edge.
func InBounds(focus world.Point, vp Viewport, x, y int) bool {
	s := MapToScreen(focus, vp, world.Pt(x, y))
	return insideMargin(s, vp)
}

func insideMargin(s world.Point, vp Viewport) bool {
	return s.X > 1 && s.X < vp.W-1 && s.Y > 1 && s.Y < vp.H-1
}
