package life

import (
	"context"

	"gpgpu-life/pkg/core"
)

// neighbourhood lists the eight offsets around a cell.
var neighbourhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rule applies B3/S23: a live cell survives with two or three live
// neighbours, a dead cell is born with exactly three.
func Rule(alive bool, score int) bool {
	if alive {
		return score == 2 || score == 3
	}
	return score == 3
}

// NextCell evaluates the next state of texel (x, y) from the 3x3
// neighbourhood in cur. Samples are taken at texel centres normalized by the
// texture size, so the edge policy alone decides reads beyond the grid.
func NextCell(x, y int, cur ReadHandle) float32 {
	size := cur.Size()
	w, h := float64(size.W), float64(size.H)
	cx, cy := float64(x)+0.5, float64(y)+0.5

	var score float32
	for _, off := range neighbourhood {
		score += cur.Sample((cx+float64(off[0]))/w, (cy+float64(off[1]))/h)
	}
	self := cur.Sample(cx/w, cy/h)

	if Rule(self == core.Alive, int(score)) {
		return core.Alive
	}
	return core.Dead
}

// Evaluate runs one Rule Evaluator pass, writing NextCell for every texel of
// next. The pass either runs completely or, when ctx is already done, not at
// all.
func Evaluate(ctx context.Context, cur ReadHandle, next WriteHandle, workers int) error {
	if !cur.Valid() || !next.Valid() || next.aliases(cur) {
		return ErrAliasedBuffers
	}
	if cur.Size() != next.Size() {
		return ErrSizeMismatch
	}
	size := next.Size()
	return dispatch(ctx, size.W, size.H, workers, func(x, y int) {
		next.Store(x, y, NextCell(x, y, cur))
	})
}
