package life

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// dispatch evaluates kernel once for every (x, y) in a w*h domain. Rows are
// split into bands and run concurrently; no kernel may observe another
// kernel's output. dispatch returns once every band has finished.
func dispatch(ctx context.Context, w, h, workers int, kernel func(x, y int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	rowsPer := (h + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for yStart := 0; yStart < h; yStart += rowsPer {
		yEnd := min(yStart+rowsPer, h)
		y0, y1 := yStart, yEnd
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					kernel(x, y)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
