package tilt

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Surface is the host element a tilt engine animates. Size is read on demand
// and never cached by the engine, so resizes take effect on the next frame.
type Surface interface {
	Size() (width, height float64)
}

// SurfaceFunc adapts a plain function to the Surface interface.
type SurfaceFunc func() (width, height float64)

// Size calls f.
func (f SurfaceFunc) Size() (width, height float64) { return f() }

// FocusFunc reports whether the host document or window currently has input
// focus. A nil FocusFunc is treated as never focused.
type FocusFunc func() bool

// ParamsSink receives every parameter set published by a card.
type ParamsSink interface {
	PublishParams(event ParamsEvent)
}

// ParamsEvent is a published parameter set tagged with its card.
type ParamsEvent struct {
	Card   string
	Params Params
	Active bool
}

// EventType identifies a kind of hover event delivered to a card.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer moved onto the card
	EventPointerMove                   // pointer moved while over the card
	EventPointerLeave                  // pointer left the card
)

func (t EventType) String() string {
	switch t {
	case EventPointerEnter:
		return "enter"
	case EventPointerMove:
		return "move"
	case EventPointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}
