package life

import (
	"math"

	"gpgpu-life/pkg/core"
)

// ReadHandle is a read-only view of the CURRENT texture. Only a Scheduler or
// Bind can issue one, so the zero value samples nothing.
type ReadHandle struct {
	tex  *core.StateTexture
	edge EdgePolicy
}

// WriteHandle is a write-only view of the NEXT texture.
type WriteHandle struct {
	tex *core.StateTexture
}

// Bind issues a read handle for cur and a write handle for next. It fails with
// ErrAliasedBuffers when both name the same texture and with ErrSizeMismatch
// when their sizes differ.
func Bind(cur, next *core.StateTexture, edge EdgePolicy) (ReadHandle, WriteHandle, error) {
	if cur == nil || next == nil || cur == next {
		return ReadHandle{}, WriteHandle{}, ErrAliasedBuffers
	}
	if cur.Size() != next.Size() {
		return ReadHandle{}, WriteHandle{}, ErrSizeMismatch
	}
	return ReadHandle{tex: cur, edge: edge}, WriteHandle{tex: next}, nil
}

// Valid reports whether the handle refers to a texture.
func (r ReadHandle) Valid() bool { return r.tex != nil }

// Size returns the dimensions of the sampled texture.
func (r ReadHandle) Size() core.Size { return r.tex.Size() }

// Edge returns the policy used for out-of-range samples.
func (r ReadHandle) Edge() EdgePolicy { return r.edge }

// Texel returns the cell at integer coordinates, resolving coordinates
// outside the grid with the edge policy.
func (r ReadHandle) Texel(x, y int) float32 {
	t := r.tex
	if !t.In(x, y) {
		switch r.edge {
		case EdgeWrap:
			x, y = t.Wrap(x, y)
		case EdgeClampToEdge:
			x, y = t.Clamp(x, y)
		default:
			return core.Dead
		}
	}
	return t.At(x, y)
}

// Sample performs a nearest-filtered read at normalized coordinates, where
// [0, 1) spans the texture along each axis.
func (r ReadHandle) Sample(u, v float64) float32 {
	x := int(math.Floor(u * float64(r.tex.W)))
	y := int(math.Floor(v * float64(r.tex.H)))
	return r.Texel(x, y)
}

// Valid reports whether the handle refers to a texture.
func (w WriteHandle) Valid() bool { return w.tex != nil }

// Size returns the dimensions of the target texture.
func (w WriteHandle) Size() core.Size { return w.tex.Size() }

// Store writes v into the cell at (x, y).
func (w WriteHandle) Store(x, y int, v float32) {
	w.tex.Cells()[w.tex.Index(x, y)] = v
}

func (w WriteHandle) aliases(r ReadHandle) bool {
	return w.tex == r.tex
}
