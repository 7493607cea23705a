// Package clockflag reads time-valued command line flags in the local zone.
package clockflag

import (
	"time"

	"cloudeng.io/cmdutil/flags"
)

// localLayouts are the flags.Time layouts that carry no zone offset.
var localLayouts = []string{time.DateTime, time.DateOnly, time.TimeOnly}

// Local returns the flag's value in the local zone. A literal without a zone
// offset is read as local wall-clock time; one with an offset is converted.
func Local(f *flags.Time) time.Time {
	return In(f, time.Local)
}

// In is Local for an explicit zone.
func In(f *flags.Time, loc *time.Location) time.Time {
	literal := f.String()
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, literal, loc); err == nil {
			return t
		}
	}
	t, _ := f.Get().(time.Time)
	return t.In(loc)
}
