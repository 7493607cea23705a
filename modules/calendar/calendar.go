// Package calendar implements a scrollable three-month calendar widget.
//
// The widget draws the previous, current and next month side by side. Scrolling
// accumulates a month offset (100 units per month); clicking the left or right
// panel pages by one month and clicking the middle panel returns to today.
package calendar

import (
	"fmt"
	"time"

	"sparkcal/gfx"
	"sparkcal/module"

	"cloudeng.io/errors"
)

const (
	PanelWidth  = 384
	PanelHeight = 344
	// PanelStride is the horizontal distance between panel origins.
	PanelStride = 448

	Width  = 2*PanelStride + PanelWidth
	Height = PanelHeight

	// OffsetPerMonth is the offset accumulator value of one full month.
	OffsetPerMonth = 100.0
)

var _ module.Module = (*Calendar)(nil)

// Calendar is the widget state. It is owned by one host and is not safe for
// concurrent use.
type Calendar struct {
	curDate Date
	dirty   bool
	offset  float64
}

// New returns a calendar showing the current local month.
func New() *Calendar {
	return NewAt(time.Now())
}

// NewAt returns a calendar whose stored date is now's date.
func NewAt(now time.Time) *Calendar {
	return &Calendar{curDate: DateOf(now), dirty: true}
}

// Offset returns the month-offset accumulator.
func (c *Calendar) Offset() float64 { return c.offset }

// SetOffset replaces the month-offset accumulator and requests a redraw.
func (c *Calendar) SetOffset(v float64) {
	c.offset = v
	c.dirty = true
}

// Update reports whether a redraw is needed: always after construction or
// input, and whenever the date changed or force is set.
func (c *Calendar) Update(now time.Time, force bool) bool {
	if c.dirty {
		c.dirty = false
		return true
	}
	if d := DateOf(now); d != c.curDate || force {
		c.curDate = d
		return true
	}
	return false
}

// Input handles Scroll and Click; other events are ignored.
func (c *Calendar) Input(ev module.Input) {
	switch ev := ev.(type) {
	case module.Scroll:
		c.offset += ev.DY
		c.dirty = true
	case module.Click:
		switch {
		case ev.Pos.X < PanelStride:
			c.offset -= OffsetPerMonth
		case ev.Pos.X >= 2*PanelStride:
			c.offset += OffsetPerMonth
		default:
			c.offset = 0
		}
		c.dirty = true
	}
}

// MonthShift converts an offset to whole months, truncating toward zero.
func MonthShift(offset float64) int {
	return int(offset / OffsetPerMonth)
}

// Anchors returns the first day of the previous, centre and next month for
// today shifted by offset.
func Anchors(today Date, offset float64) [3]Date {
	center := firstOfMonth(today)
	if shift := MonthShift(offset); shift != 0 {
		center = addMonths(center, shift)
	}
	return [3]Date{addMonths(center, -1), center, addMonths(center, 1)}
}

// Draw renders the three panels into buf and returns their rectangles left to
// right. Any failure aborts the whole draw.
func (c *Calendar) Draw(buf *gfx.Buffer, bg gfx.Color, now time.Time) ([]gfx.Rect, error) {
	today := DateOf(now)
	anchors := Anchors(today, c.offset)

	damage := make([]gfx.Rect, 0, len(anchors))
	for i, anchor := range anchors {
		panel, err := buf.Sub(gfx.R(i*PanelStride, 0, PanelWidth, PanelHeight))
		if err == nil {
			var r gfx.Rect
			r, err = drawMonth(panel, bg, today, anchor)
			damage = append(damage, r)
		}
		if err != nil {
			return nil, errors.Annotate(fmt.Sprintf("calendar: panel %d (%04d-%02d)", i, anchor.Year, anchor.Month), err)
		}
	}
	return damage, nil
}
