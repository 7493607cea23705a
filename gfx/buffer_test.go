package gfx

import (
	"errors"
	"image/color"
	"testing"

	"sparkcal/hal"
)

func newTestBuffer(t *testing.T, w, h int) (*hal.MemFramebuffer, *Buffer) {
	t.Helper()
	fb := hal.NewMemFramebuffer(w, h)
	buf, err := NewBuffer(fb)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return fb, buf
}

func TestSubBounds(t *testing.T) {
	_, root := newTestBuffer(t, 100, 50)

	sub, err := root.Sub(R(10, 5, 30, 20))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if got, want := sub.SignedBounds(), R(10, 5, 30, 20); got != want {
		t.Fatalf("bounds: got %v want %v", got, want)
	}

	inner, err := sub.Sub(R(2, 3, 4, 5))
	if err != nil {
		t.Fatalf("nested Sub: %v", err)
	}
	if got, want := inner.SignedBounds(), R(12, 8, 4, 5); got != want {
		t.Fatalf("nested bounds: got %v want %v", got, want)
	}
}

func TestSubOutOfBounds(t *testing.T) {
	_, root := newTestBuffer(t, 100, 50)
	for _, r := range []Rect{
		R(90, 0, 20, 10),
		R(0, 45, 10, 10),
		R(-1, 0, 10, 10),
		R(0, 0, 0, 10),
	} {
		if _, err := root.Sub(r); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Sub(%v): expected ErrOutOfBounds, got %v", r, err)
		}
	}
}

func TestMemsetOnlyTouchesView(t *testing.T) {
	fb, root := newTestBuffer(t, 20, 10)
	sub, err := root.Sub(R(5, 2, 4, 3))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	sub.Memset(White)

	white := hal.RGB565(255, 255, 255)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 5 && x < 9 && y >= 2 && y < 5
			got := fb.PixelAt(x, y)
			if inside && got != white {
				t.Fatalf("(%d,%d) expected white", x, y)
			}
			if !inside && got != 0 {
				t.Fatalf("(%d,%d) expected untouched, got %#04x", x, y, got)
			}
		}
	}
}

func TestSetPixelClips(t *testing.T) {
	fb, root := newTestBuffer(t, 10, 10)
	sub, err := root.Sub(R(2, 2, 3, 3))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	red := color.RGBA{R: 255, A: 255}
	sub.SetPixel(0, 0, red)
	sub.SetPixel(3, 0, red)
	sub.SetPixel(-1, 1, red)

	if fb.PixelAt(2, 2) != hal.RGB565(255, 0, 0) {
		t.Fatal("expected pixel at view origin")
	}
	if fb.PixelAt(5, 2) != 0 || fb.PixelAt(1, 3) != 0 {
		t.Fatal("expected clipped pixels to be dropped")
	}
	if got := sub.PixelAt(0, 0); got != hal.RGB565(255, 0, 0) {
		t.Fatalf("PixelAt: got %#04x", got)
	}
}

func TestNewBufferRejectsEmpty(t *testing.T) {
	if _, err := NewBuffer(hal.NewMemFramebuffer(0, 0)); !errors.Is(err, ErrNoPixels) {
		t.Fatalf("expected ErrNoPixels, got %v", err)
	}
}
