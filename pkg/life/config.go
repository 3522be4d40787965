package life

import (
	"flag"
	"fmt"
	"math"
	"strconv"

	"gpgpu-life/pkg/core"
)

// Limits on configured sizes. MaxDimension bounds every dimension and
// MaxArea bounds the cell count of the grid and the pixel count of the canvas.
const (
	MaxDimension = 1 << 14
	MaxArea      = 1 << 26
)

// Config is the single configuration shared by both passes. Dimensions are
// unitless pixel counts.
type Config struct {
	TileWidth    float64
	TileHeight   float64
	CanvasWidth  float64
	CanvasHeight float64
	GridWidth    float64
	GridHeight   float64

	Bounds BoundsPolicy
	Edge   EdgePolicy
}

// DefaultConfig returns the standard configuration: a 128x128 grid drawn as
// 32x32 tiles on a 640x480 canvas.
func DefaultConfig() Config {
	return Config{
		TileWidth:    32,
		TileHeight:   32,
		CanvasWidth:  640,
		CanvasHeight: 480,
		GridWidth:    128,
		GridHeight:   128,
		Bounds:       BoundsChecked,
		Edge:         EdgeClampToDead,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; Validate reports the rest.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"tile_w", &c.TileWidth},
		{"tile_h", &c.TileHeight},
		{"canvas_w", &c.CanvasWidth},
		{"canvas_h", &c.CanvasHeight},
		{"w", &c.GridWidth},
		{"h", &c.GridHeight},
	}
	for _, f := range floats {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*f.dst = parsed
			}
		}
	}
	if v, ok := cfg["bounds"]; ok {
		if parsed, err := ParseBoundsPolicy(v); err == nil {
			c.Bounds = parsed
		}
	}
	if v, ok := cfg["edge"]; ok {
		if parsed, err := ParseEdgePolicy(v); err == nil {
			c.Edge = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.TileWidth, "tile-w", c.TileWidth, "tile width in canvas pixels")
	fs.Float64Var(&c.TileHeight, "tile-h", c.TileHeight, "tile height in canvas pixels")
	fs.Float64Var(&c.CanvasWidth, "canvas-w", c.CanvasWidth, "canvas width in pixels")
	fs.Float64Var(&c.CanvasHeight, "canvas-h", c.CanvasHeight, "canvas height in pixels")
	fs.Float64Var(&c.GridWidth, "grid-w", c.GridWidth, "grid width in cells")
	fs.Float64Var(&c.GridHeight, "grid-h", c.GridHeight, "grid height in cells")
	fs.Var(&c.Bounds, "bounds", "out-of-grid tile policy: checked or unchecked")
	fs.Var(&c.Edge, "edge", "neighbour edge policy: wrap, clamp-to-dead or clamp-to-edge")
}

// Validate reports an error wrapping ErrInvalidConfiguration when a dimension
// is not a positive finite number, a dimension exceeds MaxDimension, the grid
// or canvas area exceeds MaxArea, the grid is not a whole number of cells, or
// a policy is unknown.
func (c Config) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"tile width", c.TileWidth},
		{"tile height", c.TileHeight},
		{"canvas width", c.CanvasWidth},
		{"canvas height", c.CanvasHeight},
		{"grid width", c.GridWidth},
		{"grid height", c.GridHeight},
	}
	for _, d := range dims {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) || d.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfiguration, d.name, d.v)
		}
		if d.v > MaxDimension {
			return fmt.Errorf("%w: %s %v exceeds %d", ErrInvalidConfiguration, d.name, d.v, MaxDimension)
		}
	}
	if g := c.GridSize(); g.Area() > MaxArea {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidConfiguration, g.W, g.H, MaxArea)
	}
	if cv := c.CanvasSize(); cv.Area() > MaxArea {
		return fmt.Errorf("%w: canvas %dx%d exceeds %d pixels", ErrInvalidConfiguration, cv.W, cv.H, MaxArea)
	}
	if c.GridWidth != math.Trunc(c.GridWidth) || c.GridHeight != math.Trunc(c.GridHeight) {
		return fmt.Errorf("%w: grid %vx%v is not a whole number of cells", ErrInvalidConfiguration, c.GridWidth, c.GridHeight)
	}
	if !c.Bounds.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, c.Bounds)
	}
	if !c.Edge.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, c.Edge)
	}
	return nil
}

// GridSize returns the grid dimensions in cells.
func (c Config) GridSize() core.Size {
	return core.Size{W: int(c.GridWidth), H: int(c.GridHeight)}
}

// CanvasSize returns the canvas buffer dimensions, rounding partial pixels up.
func (c Config) CanvasSize() core.Size {
	return core.Size{W: int(math.Ceil(c.CanvasWidth)), H: int(math.Ceil(c.CanvasHeight))}
}

// Geometry returns the tile geometry part of the configuration.
func (c Config) Geometry() TileGeometry {
	return TileGeometry{
		TileWidth:    c.TileWidth,
		TileHeight:   c.TileHeight,
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
	}
}

// checkGrid reports whether size matches the configured grid.
func (c Config) checkGrid(size core.Size) error {
	if want := c.GridSize(); want != size {
		return fmt.Errorf("%w: grid is %dx%d but texture is %dx%d",
			ErrInvalidConfiguration, want.W, want.H, size.W, size.H)
	}
	return nil
}

// TileGeometry maps canvas pixels onto tiles. It is independent of the grid
// size; the tiled area may be larger or smaller than the grid.
type TileGeometry struct {
	TileWidth    float64
	TileHeight   float64
	CanvasWidth  float64
	CanvasHeight float64
}

// NumTiles returns ceil(canvas / tile) along each axis.
func (g TileGeometry) NumTiles() (int, int) {
	return int(math.Ceil(g.CanvasWidth / g.TileWidth)), int(math.Ceil(g.CanvasHeight / g.TileHeight))
}

// TileAt returns floor(p / tile) along each axis for a canvas position.
func (g TileGeometry) TileAt(px, py float64) (int, int) {
	return int(math.Floor(px / g.TileWidth)), int(math.Floor(py / g.TileHeight))
}
