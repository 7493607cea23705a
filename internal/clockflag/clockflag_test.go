package clockflag

import (
	"testing"
	"time"

	"cloudeng.io/cmdutil/flags"
)

func TestIn(t *testing.T) {
	west := time.FixedZone("west", -5*3600)
	for _, tc := range []struct {
		arg  string
		want time.Time
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, west)},
		{"2024-03-15 08:30:00", time.Date(2024, 3, 15, 8, 30, 0, 0, west)},
		{"2024-03-15T02:00:00Z", time.Date(2024, 3, 14, 21, 0, 0, 0, west)},
		{"2024-03-15T02:00:00+09:00", time.Date(2024, 3, 14, 12, 0, 0, 0, west)},
	} {
		var f flags.Time
		if err := f.Set(tc.arg); err != nil {
			t.Fatalf("Set(%q): %v", tc.arg, err)
		}
		got := In(&f, west)
		if !got.Equal(tc.want) || got.Location() != west {
			t.Fatalf("%q: got %v want %v", tc.arg, got, tc.want)
		}
		if y, m, d := got.Date(); y != tc.want.Year() || m != tc.want.Month() || d != tc.want.Day() {
			t.Fatalf("%q: local date %v-%v-%v", tc.arg, y, m, d)
		}
	}
}

func TestLocalUsesLocalZone(t *testing.T) {
	var f flags.Time
	if err := f.Set("2024-03-15"); err != nil {
		t.Fatal(err)
	}
	if got := Local(&f); got.Location() != time.Local || got.Day() != 15 {
		t.Fatalf("got %v", got)
	}
}
