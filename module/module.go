// Package module defines the lifecycle contract between the host and the
// widgets it drives.
//
// The host polls Update once per tick; when it reports true the host calls
// Draw and composites the returned damage rectangles. Input events are
// forwarded as they arrive and never draw. All three methods are called from a
// single goroutine; implementations do no locking of their own.
package module

import (
	"time"

	"sparkcal/gfx"
)

// Module is a pluggable widget.
type Module interface {
	// Update reports whether the module must be redrawn.
	Update(now time.Time, force bool) bool
	// Draw renders into buf and returns the damaged rectangles in buf's root
	// coordinate space.
	Draw(buf *gfx.Buffer, bg gfx.Color, now time.Time) ([]gfx.Rect, error)
	// Input delivers a pointer or keyboard event in module-local coordinates.
	Input(ev Input)
}

// Point is a position in module-local coordinates.
type Point struct {
	X, Y int
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
)

// Input is one of Scroll, Click or Key.
type Input interface {
	isInput()
}

// Scroll is a wheel or touchpad scroll.
type Scroll struct {
	Pos    Point
	DX, DY float64
}

// Click is a pointer button press.
type Click struct {
	Pos    Point
	Button Button
}

// Key is a keyboard event.
type Key struct {
	Rune  rune
	Press bool
}

func (Scroll) isInput() {}
func (Click) isInput()  {}
func (Key) isInput()    {}
