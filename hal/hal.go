package hal

import (
	"errors"
	"time"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// PointerKind distinguishes pointer events.
type PointerKind uint8

const (
	PointerWheel PointerKind = iota + 1
	PointerPress
	PointerRelease
)

// PointerEvent is a mouse/touch event in framebuffer coordinates.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	DX, DY float64
	Button uint8
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// Clock supplies wall-clock time in the local zone.
type Clock interface {
	Now() time.Time
}

// HAL provides the only contact point between the widget host and the outside world.
type HAL interface {
	Display() Display
	Input() Input
	Clock() Clock
}
