package calendar

import (
	"testing"
	"time"

	"sparkcal/gfx"
	"sparkcal/hal"

	"cloudeng.io/datetime"
)

type textRun struct {
	font gfx.FontID
	rect gfx.Rect
	fg   gfx.Color
	size float64
	text string
}

// recordText replaces drawText for the duration of the test.
func recordText(t *testing.T) *[]textRun {
	t.Helper()
	runs := &[]textRun{}
	orig := drawText
	drawText = func(font gfx.FontID, buf *gfx.Buffer, bg, fg gfx.Color, size float64, text string) error {
		*runs = append(*runs, textRun{font: font, rect: buf.SignedBounds(), fg: fg, size: size, text: text})
		return nil
	}
	t.Cleanup(func() { drawText = orig })
	return runs
}

func newFramebuffer(t *testing.T, w, h int) (*hal.MemFramebuffer, *gfx.Buffer) {
	t.Helper()
	fb := hal.NewMemFramebuffer(w, h)
	buf, err := gfx.NewBuffer(fb)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return fb, buf
}

func date(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: datetime.Month(m), Day: d}
}

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

// dayRuns returns the day-of-month glyph runs: the 32px cells right of the
// week-number column.
func dayRuns(runs []textRun, panelX int32) []textRun {
	var out []textRun
	for _, r := range runs {
		if r.size == 32 && r.rect.X > panelX && r.rect.Y >= headerH+firstWeekRow*cellH && r.rect.X < panelX+PanelWidth {
			out = append(out, r)
		}
	}
	return out
}
