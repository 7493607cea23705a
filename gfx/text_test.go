package gfx

import (
	"errors"
	"testing"
)

func TestPickFace(t *testing.T) {
	for _, tc := range []struct {
		size float64
		want float64
	}{
		{8, 12},
		{16, 16},
		{20, 16},
		{32, 32},
		{64, 32},
	} {
		f, err := pickFace(FontMono, tc.size)
		if err != nil {
			t.Fatalf("pickFace(%v): %v", tc.size, err)
		}
		if f.px != tc.want {
			t.Fatalf("pickFace(%v): got %v want %v", tc.size, f.px, tc.want)
		}
	}
}

func TestDrawTextUnknownFont(t *testing.T) {
	_, buf := newTestBuffer(t, 10, 10)
	if err := DrawText(FontID(99), buf, Black, White, 16, "x"); !errors.Is(err, ErrUnknownFont) {
		t.Fatalf("expected ErrUnknownFont, got %v", err)
	}
	if err := DrawText(FontMono, nil, Black, White, 16, "x"); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("expected ErrNilBuffer, got %v", err)
	}
}

func TestDrawTextStaysInView(t *testing.T) {
	fb, root := newTestBuffer(t, 120, 60)
	sub, err := root.Sub(R(10, 10, 38, 32))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	bg := Gray(0.1)
	if err := DrawText(FontMono, sub, bg, White, 32, "88"); err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	lit := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			inside := x >= 10 && x < 48 && y >= 10 && y < 42
			p := fb.PixelAt(x, y)
			if !inside && p != 0 {
				t.Fatalf("pixel (%d,%d) outside view was written", x, y)
			}
			if inside && p == White.RGB565() {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("expected glyph pixels inside the view")
	}
}

func TestTextWidthMonospace(t *testing.T) {
	one, err := TextWidth(FontMono, 16, "0")
	if err != nil {
		t.Fatalf("TextWidth: %v", err)
	}
	two, err := TextWidth(FontMono, 16, "00")
	if err != nil {
		t.Fatalf("TextWidth: %v", err)
	}
	if one <= 0 || two != 2*one {
		t.Fatalf("expected fixed advance, got %d and %d", one, two)
	}
}
