package life

import (
	"context"
	"image"
	"image/color"

	"gpgpu-life/pkg/core"
)

// Colors emitted by the Tile Mapper.
var (
	AliveColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DeadColor     = color.RGBA{A: 0xff}
	SentinelColor = color.RGBA{R: 0xff, A: 0xff}
)

// CellAt maps integer canvas pixel (px, py) to the tile it falls in, using
// the pixel centre. The result may lie outside the grid.
func (c Config) CellAt(px, py int) (int, int) {
	return c.Geometry().TileAt(float64(px)+0.5, float64(py)+0.5)
}

// ScreenColor returns the colour of the canvas position (px, py): the state
// of the tile's cell, or SentinelColor for tiles beyond the grid when the
// bounds policy is BoundsChecked.
func ScreenColor(px, py float64, cur ReadHandle, cfg Config) color.RGBA {
	tx, ty := cfg.Geometry().TileAt(px, py)
	size := cur.Size()
	if cfg.Bounds == BoundsChecked && (tx < 0 || ty < 0 || tx >= size.W || ty >= size.H) {
		return SentinelColor
	}
	u := (float64(tx) + 0.5) / float64(size.W)
	v := (float64(ty) + 0.5) / float64(size.H)
	if cur.Sample(u, v) == core.Alive {
		return AliveColor
	}
	return DeadColor
}

// Render runs one Tile Mapper pass into dst, which must cover the canvas.
// The handle's texture must match the configured grid.
func Render(ctx context.Context, cur ReadHandle, cfg Config, dst *image.RGBA, workers int) error {
	if !cur.Valid() {
		return ErrAliasedBuffers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.checkGrid(cur.Size()); err != nil {
		return err
	}
	canvas := cfg.CanvasSize()
	if b := dst.Bounds(); b.Dx() < canvas.W || b.Dy() < canvas.H {
		return ErrSizeMismatch
	}
	origin := dst.Bounds().Min
	return dispatch(ctx, canvas.W, canvas.H, workers, func(x, y int) {
		dst.SetRGBA(origin.X+x, origin.Y+y, ScreenColor(float64(x)+0.5, float64(y)+0.5, cur, cfg))
	})
}

// NewCanvas allocates an RGBA buffer sized to the configured canvas.
func NewCanvas(cfg Config) *image.RGBA {
	s := cfg.CanvasSize()
	return image.NewRGBA(image.Rect(0, 0, s.W, s.H))
}
