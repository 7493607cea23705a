// Package app hosts widget modules on a HAL: it routes pointer input to the
// module under the pointer, asks each module whether it needs a redraw and
// presents the framebuffer.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"sparkcal/gfx"
	"sparkcal/hal"
	"sparkcal/module"
	"sparkcal/modules/calendar"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

var (
	ErrNoDisplay = errors.New("app: no display")
	ErrPanic     = errors.New("app: module panic")
)

// DefaultScrollStep is the offset change for one wheel notch.
const DefaultScrollStep = 20.0

type Config struct {
	// ForceEvery forces a redraw every N ticks; 0 only forces the first tick.
	ForceEvery uint64
	// ScrollStep scales wheel deltas into module scroll units.
	ScrollStep float64
	Background gfx.Color
	// Slots replaces the default calendar module when non-empty.
	Slots []Slot
}

// Slot places a module on a region of the framebuffer.
type Slot struct {
	Name   string
	Module module.Module
	Region gfx.Rect

	// retry is set when the last draw failed.
	retry bool
}

type system struct {
	ctx   context.Context
	log   *slog.Logger
	h     hal.HAL
	cfg   Config
	slots []*Slot
	tick  uint64
	fatal error
}

// New builds the module registry and returns the per-tick step function.
func New(ctx context.Context, h hal.HAL, cfg Config) func() error {
	return newSystem(ctx, h, cfg).step
}

// calendarSlot places the calendar at the framebuffer origin.
func calendarSlot(h hal.HAL) Slot {
	return Slot{
		Name:   "calendar",
		Module: calendar.NewAt(h.Clock().Now()),
		Region: gfx.R(0, 0, calendar.Width, calendar.Height),
	}
}

func newSystem(ctx context.Context, h hal.HAL, cfg Config) *system {
	if cfg.ScrollStep == 0 {
		cfg.ScrollStep = DefaultScrollStep
	}
	if cfg.Background == (gfx.Color{}) {
		cfg.Background = gfx.Black
	}
	slots := cfg.Slots
	if len(slots) == 0 {
		slots = []Slot{calendarSlot(h)}
	}
	s := &system{
		ctx: ctxlog.WithAttributes(ctx, "component", "app"),
		h:   h,
		cfg: cfg,
	}
	s.log = ctxlog.Logger(s.ctx)
	for i := range slots {
		sl := slots[i]
		s.slots = append(s.slots, &sl)
	}
	return s
}

func (s *system) step() (err error) {
	if s.fatal != nil {
		return s.fatal
	}
	defer func() {
		if r := recover(); r != nil {
			s.fatal = s.panicked(r, debug.Stack())
			err = s.fatal
		}
	}()

	s.dispatchInput()

	force := s.tick == 0 || (s.cfg.ForceEvery > 0 && s.tick%s.cfg.ForceEvery == 0)
	s.tick++
	return s.render(s.h.Clock().Now(), force)
}

func (s *system) framebuffer() hal.Framebuffer {
	d := s.h.Display()
	if d == nil {
		return nil
	}
	return d.Framebuffer()
}

func (s *system) render(now time.Time, force bool) error {
	fb := s.framebuffer()
	if fb == nil {
		return ErrNoDisplay
	}
	buf, err := gfx.NewBuffer(fb)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	errs := &errors.M{}
	drawn := 0
	for _, sl := range s.slots {
		redraw := sl.Module.Update(now, force || sl.retry)
		if !redraw {
			continue
		}
		damage, err := s.draw(buf, sl, now)
		if err != nil {
			sl.retry = true
			errs.Append(errors.Annotate("app: "+sl.Name, err))
			continue
		}
		sl.retry = false
		drawn++
		s.log.Debug("drawn", "module", sl.Name, "force", force, "damage", fmt.Sprint(damage))
	}

	if err := errs.Err(); err != nil {
		s.log.Error("draw failed, frame skipped", "tick", s.tick, "error", err)
		return nil
	}
	if drawn == 0 {
		return nil
	}
	if err := fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (s *system) draw(buf *gfx.Buffer, sl *Slot, now time.Time) ([]gfx.Rect, error) {
	sub, err := buf.Sub(sl.Region)
	if err != nil {
		return nil, err
	}
	return sl.Module.Draw(sub, s.cfg.Background, now)
}

func (s *system) dispatchInput() {
	in := s.h.Input()
	if in == nil {
		return
	}
	p := in.Pointer()
	if p == nil {
		return
	}
	ch := p.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			s.route(ev)
		default:
			return
		}
	}
}

func (s *system) route(ev hal.PointerEvent) {
	for _, sl := range s.slots {
		if !sl.Region.ContainsPoint(ev.X, ev.Y) {
			continue
		}
		pos := module.Point{X: ev.X - int(sl.Region.X), Y: ev.Y - int(sl.Region.Y)}
		switch ev.Kind {
		case hal.PointerWheel:
			sl.Module.Input(module.Scroll{Pos: pos, DX: ev.DX * s.cfg.ScrollStep, DY: ev.DY * s.cfg.ScrollStep})
		case hal.PointerPress:
			sl.Module.Input(module.Click{Pos: pos, Button: module.Button(ev.Button)})
		default:
			return
		}
		s.log.Debug("input", "module", sl.Name, "kind", ev.Kind, "x", pos.X, "y", pos.Y)
		return
	}
}
