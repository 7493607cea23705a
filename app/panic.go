package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"sparkcal/gfx"
	"sparkcal/hal"
)

const (
	panicFontSize = 12
	panicLineH    = 16
	panicMargin   = 4
)

// panicked logs a recovered panic, paints it on the display and returns the
// fatal error that stops the host loop.
func (s *system) panicked(v any, stack []byte) error {
	s.log.Error("panic", "tick", s.tick, "panic", fmt.Sprint(v), "stack", string(stack))

	var err error
	if e, ok := v.(error); ok {
		err = fmt.Errorf("%w: %w", ErrPanic, e)
	} else {
		err = fmt.Errorf("%w: %v", ErrPanic, v)
	}

	if fb := s.framebuffer(); fb != nil {
		if perr := paintPanic(fb, v, stack); perr != nil {
			s.log.Error("panic screen", "error", perr)
		}
	}
	return err
}

func paintPanic(fb hal.Framebuffer, v any, stack []byte) error {
	fb.ClearRGB(255, 255, 255)
	buf, err := gfx.NewBuffer(fb)
	if err != nil {
		return err
	}

	lines := []string{
		"Calendar panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	charW, err := gfx.TextWidth(gfx.FontMono, panicFontSize, "0")
	if err != nil {
		return err
	}
	w := buf.Width() - 2*panicMargin
	cols := 1
	if charW > 0 && w/charW > 1 {
		cols = w / charW
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineH > buf.Height() {
				return fb.Present()
			}
			chunk, rest := takeRunes(line, cols)
			row, err := buf.Sub(gfx.R(panicMargin, y, w, panicLineH))
			if err != nil {
				return err
			}
			if err := gfx.DrawText(gfx.FontMono, row, gfx.White, gfx.Black, panicFontSize, chunk); err != nil {
				return err
			}
			y += panicLineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	return fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
