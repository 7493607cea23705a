package gfx

import (
	"errors"
	"fmt"
	"image/color"

	"sparkcal/hal"
)

var (
	ErrOutOfBounds = errors.New("region out of bounds")
	ErrNoPixels    = errors.New("framebuffer has no pixels")
	ErrPixelFormat = errors.New("unsupported pixel format")
)

// Buffer is a rectangular view into an RGB565 framebuffer.
//
// Views created with Sub share pixel memory with their parent and have no
// lifetime of their own. A Buffer is not safe for concurrent use.
type Buffer struct {
	pix    []byte
	stride int
	rect   Rect
}

// NewBuffer returns the root view of fb.
func NewBuffer(fb hal.Framebuffer) (*Buffer, error) {
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("gfx: %w: %d", ErrPixelFormat, fb.Format())
	}
	pix := fb.Buffer()
	if pix == nil || fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, fmt.Errorf("gfx: %w", ErrNoPixels)
	}
	return &Buffer{
		pix:    pix,
		stride: fb.StrideBytes(),
		rect:   R(0, 0, fb.Width(), fb.Height()),
	}, nil
}

func (b *Buffer) Width() int  { return int(b.rect.W) }
func (b *Buffer) Height() int { return int(b.rect.H) }

// SignedBounds returns the view's rectangle in root coordinates.
func (b *Buffer) SignedBounds() Rect { return b.rect }

// Sub returns the child view r, relative to b.
func (b *Buffer) Sub(r Rect) (*Buffer, error) {
	local := R(0, 0, b.Width(), b.Height())
	if r.Empty() || !local.Contains(r) {
		return nil, fmt.Errorf("gfx: sub %v of %v: %w", r, b.rect, ErrOutOfBounds)
	}
	return &Buffer{
		pix:    b.pix,
		stride: b.stride,
		rect:   Rect{X: b.rect.X + r.X, Y: b.rect.Y + r.Y, W: r.W, H: r.H},
	}, nil
}

// Memset fills the whole view with c.
func (b *Buffer) Memset(c Color) {
	pixel := c.RGB565()
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := 0; y < b.Height(); y++ {
		row := (int(b.rect.Y)+y)*b.stride + int(b.rect.X)*2
		for x := 0; x < b.Width(); x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(b.pix) {
				continue
			}
			b.pix[off] = lo
			b.pix[off+1] = hi
		}
	}
}

// Size implements drivers.Displayer.
func (b *Buffer) Size() (x, y int16) {
	return int16(b.rect.W), int16(b.rect.H)
}

// SetPixel implements drivers.Displayer; coordinates are view-relative and
// pixels outside the view are dropped.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= b.Width() || iy < 0 || iy >= b.Height() {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := (int(b.rect.Y)+iy)*b.stride + (int(b.rect.X)+ix)*2
	if off < 0 || off+1 >= len(b.pix) {
		return
	}
	b.pix[off] = byte(pixel)
	b.pix[off+1] = byte(pixel >> 8)
}

// Display implements drivers.Displayer.
func (b *Buffer) Display() error { return nil }

// PixelAt returns the RGB565 value at view-relative (x, y), or 0 outside the view.
func (b *Buffer) PixelAt(x, y int) uint16 {
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		return 0
	}
	off := (int(b.rect.Y)+y)*b.stride + (int(b.rect.X)+x)*2
	if off < 0 || off+1 >= len(b.pix) {
		return 0
	}
	return uint16(b.pix[off]) | uint16(b.pix[off+1])<<8
}
