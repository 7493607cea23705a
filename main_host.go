package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"

	"sparkcal/app"
	"sparkcal/hal"
	"sparkcal/internal/buildinfo"
	"sparkcal/internal/clockflag"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/logging/ctxlog"
)

func main() {
	var (
		hcfg       hal.HeadlessConfig
		now        flags.Time
		verbose    bool
		forceEvery uint64
		scrollStep float64
		snapshot   string
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Var(&now, "now", "Pin the wall clock to start at this time (RFC3339, date and time, date or time).")
	flag.BoolVar(&verbose, "v", false, "Log at debug level.")
	flag.Uint64Var(&forceEvery, "force-every", 0, "Force a full redraw every N ticks (0 = first tick only).")
	flag.Float64Var(&scrollStep, "scroll-step", app.DefaultScrollStep, "Month offset units per wheel notch (100 = one month).")
	flag.StringVar(&snapshot, "snapshot", "", "Write the final frame to this PNG file when -headless -ticks N finishes.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: level})

	cfg := hal.HostConfig{Width: hal.DefaultWidth, Height: hal.DefaultHeight}
	if !now.IsDefault() {
		cfg.Now = clockflag.Local(&now)
	}
	if snapshot != "" {
		hcfg.Done = writePNG(snapshot)
	}
	newApp := func(h hal.HAL) func() error {
		return app.New(ctx, h, app.Config{ForceEvery: forceEvery, ScrollStep: scrollStep})
	}

	ctxlog.Logger(ctx).Info("starting", "build", buildinfo.String(), "headless", hcfg.Enabled, "now", cfg.Now)

	var err error
	if hcfg.Enabled {
		err = hal.RunHeadless(ctx, cfg, newApp, hcfg)
		if errors.Is(err, context.Canceled) {
			return
		}
	} else {
		err = hal.RunWindow(cfg, newApp)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writePNG returns a headless Done hook that encodes the framebuffer to path.
func writePNG(path string) func(hal.Framebuffer) error {
	return func(fb hal.Framebuffer) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, hal.ToImage(fb)); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
}
