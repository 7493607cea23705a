package gfx

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
)

var (
	ErrUnknownFont = errors.New("unknown font")
	ErrNilBuffer   = errors.New("nil buffer")
)

var _ drivers.Displayer = (*Buffer)(nil)

// FontID selects a typeface.
type FontID uint8

const (
	// FontSans is the proportional display face.
	FontSans FontID = iota + 1
	// FontMono is the fixed-width face used for numerals and labels.
	FontMono
)

func (id FontID) String() string {
	switch id {
	case FontSans:
		return "sans"
	case FontMono:
		return "mono"
	default:
		return fmt.Sprintf("font(%d)", uint8(id))
	}
}

// face is one rasterised size of a typeface. px is the nominal pixel size at 96dpi.
type face struct {
	px     float64
	font   tinyfont.Fonter
	ascent int16
}

// Faces are ordered by increasing size.
var faces = map[FontID][]face{
	FontSans: {
		{px: 12, font: &freesans.Regular9pt7b},
		{px: 16, font: &freesans.Regular12pt7b},
		{px: 24, font: &freesans.Regular18pt7b},
		{px: 32, font: &freesans.Regular24pt7b},
	},
	FontMono: {
		{px: 12, font: &freemono.Regular9pt7b},
		{px: 16, font: &freemono.Regular12pt7b},
		{px: 24, font: &freemono.Regular18pt7b},
		{px: 32, font: &freemono.Regular24pt7b},
	},
}

// Runes used to derive a stable baseline for a face.
const ascentProbe = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZbdfhklt"

func init() {
	for _, fs := range faces {
		for i := range fs {
			fs[i].ascent = computeAscent(fs[i].font)
		}
	}
}

// computeAscent returns the distance from the top of the tallest probe glyph to
// the baseline, falling back to the font's line advance.
func computeAscent(f tinyfont.Fonter) int16 {
	var ascent int16
	for _, r := range ascentProbe {
		info := f.GetGlyph(r).Info()
		if up := -int16(info.YOffset); up > ascent {
			ascent = up
		}
	}
	if ascent <= 0 {
		ascent = int16(f.GetYAdvance())
	}
	return ascent
}

// pickFace returns the largest face no taller than size, or the smallest face.
func pickFace(id FontID, size float64) (face, error) {
	fs, ok := faces[id]
	if !ok || len(fs) == 0 {
		return face{}, fmt.Errorf("gfx: %w: %v", ErrUnknownFont, id)
	}
	best := fs[0]
	for _, f := range fs[1:] {
		if f.px <= size {
			best = f
		}
	}
	return best, nil
}

// DrawText clears buf to bg and draws text from its top-left corner in fg.
// Glyphs are clipped to buf.
func DrawText(font FontID, buf *Buffer, bg, fg Color, size float64, text string) error {
	if buf == nil {
		return fmt.Errorf("gfx: draw text: %w", ErrNilBuffer)
	}
	f, err := pickFace(font, size)
	if err != nil {
		return err
	}
	buf.Memset(bg)
	tinyfont.WriteLine(buf, f.font, 0, f.ascent, text, fg.Over(bg).RGBA8())
	return nil
}

// TextWidth returns the advance width of text in pixels.
func TextWidth(font FontID, size float64, text string) (int, error) {
	f, err := pickFace(font, size)
	if err != nil {
		return 0, err
	}
	_, outbox := tinyfont.LineWidth(f.font, text)
	return int(outbox), nil
}
