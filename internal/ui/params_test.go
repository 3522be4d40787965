package ui

import (
	"slices"
	"testing"

	"gpgpu-life/pkg/life"
)

func TestParameters(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Edge = life.EdgeWrap
	lines := Parameters(cfg).Lines()

	for _, want := range []string{
		"Grid",
		"  Width: 128",
		"  Tile width: 32",
		"  Visible tiles: 20x15",
		"  Bounds: checked",
		"  Edge: wrap",
	} {
		if !slices.Contains(lines, want) {
			t.Fatalf("missing %q in %q", want, lines)
		}
	}
}

func TestStatusLines(t *testing.T) {
	got := Status{Generation: 12, Paused: true, Rate: 7.5}.Lines()
	want := []string{"Generation 12 (paused)", "Rate 7.5 gen/s"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := (Status{}).Lines()[0]; got != "Generation 0 (running)" {
		t.Fatalf("got %q", got)
	}
}
