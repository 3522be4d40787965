package life

import (
	"fmt"
	"sort"

	"gpgpu-life/pkg/core"
)

// Pattern writes an initial generation into t. Patterns that do not use
// randomness ignore seed.
type Pattern func(t *core.StateTexture, seed int64)

var patterns = map[string]Pattern{}

// RegisterPattern adds a seed pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of seed patterns.
func Patterns() map[string]Pattern {
	return patterns
}

// PatternNames returns the registered names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// stamp clears t and marks the given cells, offset so that (0, 0) lands on
// the grid centre.
func stamp(cells [][2]int) Pattern {
	return func(t *core.StateTexture, _ int64) {
		t.Clear()
		cx, cy := t.W/2, t.H/2
		for _, c := range cells {
			t.Set(cx+c[0], cy+c[1], true)
		}
	}
}

func init() {
	RegisterPattern("empty", func(t *core.StateTexture, _ int64) { t.Clear() })
	RegisterPattern("random", func(t *core.StateTexture, seed int64) {
		core.FillBinary(core.NewRNG(seed), t, 0.5)
	})
	RegisterPattern("single", stamp([][2]int{{0, 0}}))
	RegisterPattern("blinker", stamp([][2]int{{-1, 0}, {0, 0}, {1, 0}}))
	RegisterPattern("block", stamp([][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}))
	RegisterPattern("glider", stamp([][2]int{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}))
}
