package gfx

import "fmt"

// Rect is a signed rectangle; as a damage region it is expressed in root
// framebuffer coordinates.
type Rect struct {
	X, Y, W, H int32
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// ContainsPoint reports whether (x, y) lies inside r.
func (r Rect) ContainsPoint(x, y int) bool {
	return int32(x) >= r.X && int32(y) >= r.Y && int32(x) < r.X+r.W && int32(y) < r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
