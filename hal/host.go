package hal

import "time"

const (
	// DefaultWidth and DefaultHeight fit three 384x344 panels with 64px gaps.
	DefaultWidth  = 1280
	DefaultHeight = 344
)

// HostConfig controls the host HAL.
type HostConfig struct {
	Width  int
	Height int
	// Now pins the wall clock to start at this instant when non-zero.
	Now time.Time
}

type hostHAL struct {
	fb  *MemFramebuffer
	ptr *hostPointer
	clk Clock
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	var clk Clock = wallClock{}
	if !cfg.Now.IsZero() {
		clk = newPinnedClock(cfg.Now)
	}
	return &hostHAL{
		fb:  NewMemFramebuffer(cfg.Width, cfg.Height),
		ptr: newHostPointer(),
		clk: clk,
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }
func (h *hostHAL) Clock() Clock     { return h.clk }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }
