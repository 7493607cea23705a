package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Done is called with the framebuffer after the last tick.
	Done func(Framebuffer) error
}

// RunHeadless runs the widget host without opening a window. No pointer
// events are produced.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error, hcfg HeadlessConfig) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	h := newHost(cfg)
	step := newApp(h)

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	finish := func() error {
		if hcfg.Done != nil {
			return hcfg.Done(h.fb)
		}
		return nil
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return finish()
			}
		}
	}
}
