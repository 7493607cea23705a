package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sparkcal/app"
	"sparkcal/hal"
	"sparkcal/modules/calendar"
)

func TestHeadlessSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	cfg := hal.HostConfig{Now: time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)}
	err := hal.RunHeadless(context.Background(), cfg, func(h hal.HAL) func() error {
		return app.New(context.Background(), h, app.Config{})
	}, hal.HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 2, Done: writePNG(path)})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != hal.DefaultWidth || b.Dy() != hal.DefaultHeight {
		t.Fatalf("bounds: %v", b)
	}
	lit := false
	for y := 0; y < 72 && !lit; y++ {
		for x := calendar.PanelStride; x < calendar.PanelStride+304; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r == 0xffff && g == 0xffff && b == 0xffff {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Fatal("month label missing from the snapshot")
	}
	if r, g, b, _ := img.At(calendar.PanelWidth+20, 10).RGBA(); r|g|b != 0 {
		t.Fatal("gap between panels was drawn")
	}
}

func TestWritePNGBadPath(t *testing.T) {
	fb := hal.NewMemFramebuffer(4, 4)
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "f.png"))(fb); err == nil {
		t.Fatal("expected an error")
	}
}
