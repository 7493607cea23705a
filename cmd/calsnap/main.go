// Command calsnap renders the calendar for a given date and month offset to a
// PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"sparkcal/gfx"
	"sparkcal/hal"
	"sparkcal/internal/clockflag"
	"sparkcal/modules/calendar"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/logging/ctxlog"
)

func main() {
	var (
		date    flags.Time
		offset  = flag.Float64("offset", 0, "Month offset accumulator (100 = one month).")
		outPath = flag.String("out", "", "Output PNG file.")
		verbose = flag.Bool("v", false, "Log at debug level.")
	)
	flag.Var(&date, "date", "Date to render as today (RFC3339 or 2006-01-02; default today).")
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: calsnap -out cal.png [-date 2024-03-15] [-offset 0]")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ctx := ctxlog.NewJSONLogger(context.Background(), os.Stderr, &slog.HandlerOptions{Level: level})

	now := time.Now()
	if !date.IsDefault() {
		now = clockflag.Local(&date)
	}
	if err := snapshot(ctx, *outPath, now, *offset); err != nil {
		fatalf("calsnap: %v", err)
	}
}

func snapshot(ctx context.Context, path string, now time.Time, offset float64) error {
	fb, err := render(now, offset)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, hal.ToImage(fb)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("wrote", "path", path, "date", calendar.DateOf(now).String(), "offset", offset)
	return nil
}

func render(now time.Time, offset float64) (*hal.MemFramebuffer, error) {
	fb := hal.NewMemFramebuffer(calendar.Width, calendar.Height)
	buf, err := gfx.NewBuffer(fb)
	if err != nil {
		return nil, err
	}
	c := calendar.NewAt(now)
	c.SetOffset(offset)
	if _, err := c.Draw(buf, gfx.Gray(0.08), now); err != nil {
		return nil, err
	}
	return fb, nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
