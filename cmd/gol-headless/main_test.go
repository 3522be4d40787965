package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"gpgpu-life/internal/app"
	"gpgpu-life/pkg/life"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunBlinker(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Pattern = "blinker"
	cfg.Life.GridWidth, cfg.Life.GridHeight = 5, 5
	cfg.Life.TileWidth, cfg.Life.TileHeight = 4, 4
	cfg.Life.CanvasWidth, cfg.Life.CanvasHeight = 24, 24

	out := filepath.Join(t.TempDir(), "blinker.png")
	var stdout bytes.Buffer
	opts := options{generations: 3, workers: 2, every: 1, out: out}
	if err := run(context.Background(), *cfg, opts, quietLogger(), &stdout); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "generation=3 population=3\n" {
		t.Fatalf("stdout=%q", got)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// After an odd number of steps the blinker is vertical through (2,1)..(2,3).
	alive := func(px, py int) bool {
		r, g, b, _ := img.At(px, py).RGBA()
		return r == 0xffff && g == 0xffff && b == 0xffff
	}
	if !alive(9, 5) || !alive(9, 13) || alive(5, 9) {
		t.Fatal("rendered blinker is not vertical")
	}
	// Column 5 of tiles lies past the 5x5 grid and is painted as the sentinel.
	r, g, _, _ := img.At(21, 2).RGBA()
	if r != 0xffff || g != 0 {
		t.Fatal("out-of-grid tile is not the sentinel colour")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Life.CanvasWidth = 0
	err := run(context.Background(), *cfg, options{generations: 1}, quietLogger(), io.Discard)
	if !errors.Is(err, life.ErrInvalidConfiguration) {
		t.Fatalf("err=%v, want ErrInvalidConfiguration", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := app.NewConfig()
	cfg.Life.GridWidth, cfg.Life.GridHeight = 8, 8
	err := run(ctx, *cfg, options{generations: 5}, quietLogger(), io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
