package calendar

import (
	"fmt"

	"sparkcal/gfx"
)

const (
	cellW   = 48
	cellH   = 32
	headerH = 64

	// Week rows start below the weekday header row.
	firstWeekRow = 2
)

var (
	colorLabel  = gfx.Gray(1)
	colorYear   = gfx.Gray(0.8)
	colorWeekNo = gfx.Gray(0.75)
	colorToday  = gfx.Gray(1)
	colorDay    = gfx.Gray(0.5)
)

var (
	monthRegion = gfx.R(0, 0, 304, 72)
	yearRegion  = gfx.R(320, 0, 64, 32)
)

// drawText is swapped out by tests to record glyph runs.
var drawText = gfx.DrawText

func weekdayRegion(col int) gfx.Rect {
	return gfx.R(col*cellW+4, headerH+cellH, 32, 16)
}

func cellRegion(col, row int) gfx.Rect {
	return gfx.R(col*cellW, headerH+row*cellH, 38, 32)
}

func drawLabel(buf *gfx.Buffer, r gfx.Rect, font gfx.FontID, bg, fg gfx.Color, size float64, text string) error {
	sub, err := buf.Sub(r)
	if err != nil {
		return err
	}
	return drawText(font, sub, bg, fg, size, text)
}

// drawMonth renders the month starting at anchor into buf and returns buf's
// bounds. today selects the highlighted day and whether the year is shown.
func drawMonth(buf *gfx.Buffer, bg gfx.Color, today, anchor Date) (gfx.Rect, error) {
	buf.Memset(bg)

	if err := drawLabel(buf, monthRegion, gfx.FontSans, bg, colorLabel, 64, monthName(anchor.Month)); err != nil {
		return gfx.Rect{}, err
	}
	if anchor.Year != today.Year {
		if err := drawLabel(buf, yearRegion, gfx.FontSans, bg, colorYear, 24, fmt.Sprintf("%d", anchor.Year)); err != nil {
			return gfx.Rect{}, err
		}
	}

	for i, wd := range weekdayLabels {
		if err := drawLabel(buf, weekdayRegion(i+1), gfx.FontMono, bg, colorLabel, 16, wd); err != nil {
			return gfx.Rect{}, err
		}
	}

	d := anchor
	for row := firstWeekRow; ; row++ {
		col := weekdayColumn(d)

		if err := drawLabel(buf, cellRegion(0, row), gfx.FontMono, bg, colorWeekNo, 32, fmt.Sprintf("%02d", isoWeek(d))); err != nil {
			return gfx.Rect{}, err
		}

		for col++; col < 8; col++ {
			fg := colorDay
			if d.Day == today.Day && d.Month == today.Month {
				fg = colorToday
			}
			if err := drawLabel(buf, cellRegion(col, row), gfx.FontMono, bg, fg, 32, fmt.Sprintf("%02d", d.Day)); err != nil {
				return gfx.Rect{}, err
			}
			next, ok := nextDay(d)
			if !ok {
				return buf.SignedBounds(), nil
			}
			d = next
		}
	}
}
