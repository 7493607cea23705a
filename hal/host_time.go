package hal

import "time"

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// pinnedClock starts at a fixed instant and advances with real time.
type pinnedClock struct {
	base  time.Time
	start time.Time
	since func(time.Time) time.Duration
}

func newPinnedClock(base time.Time) *pinnedClock {
	return &pinnedClock{base: base, start: time.Now(), since: time.Since}
}

func (c *pinnedClock) Now() time.Time {
	return c.base.Add(c.since(c.start))
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
