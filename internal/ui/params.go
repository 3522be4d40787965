package ui

import (
	"fmt"
	"strconv"

	"gpgpu-life/internal/core"
	"gpgpu-life/pkg/life"
)

// Parameters describes cfg for display.
func Parameters(cfg life.Config) core.ParameterSnapshot {
	nx, ny := cfg.Geometry().NumTiles()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				floatParam("w", "Width", cfg.GridWidth),
				floatParam("h", "Height", cfg.GridHeight),
			},
		},
		{
			Name: "Tiles",
			Params: []core.Parameter{
				floatParam("tile_w", "Tile width", cfg.TileWidth),
				floatParam("tile_h", "Tile height", cfg.TileHeight),
				floatParam("canvas_w", "Canvas width", cfg.CanvasWidth),
				floatParam("canvas_h", "Canvas height", cfg.CanvasHeight),
				{Key: "tiles", Label: "Visible tiles", Type: core.ParamTypeInt, Value: fmt.Sprintf("%dx%d", nx, ny)},
			},
		},
		{
			Name: "Policies",
			Params: []core.Parameter{
				{Key: "bounds", Label: "Bounds", Type: core.ParamTypeEnum, Value: cfg.Bounds.String()},
				{Key: "edge", Label: "Edge", Type: core.ParamTypeEnum, Value: cfg.Edge.String()},
			},
		},
	}}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

// Status is the per-frame state shown above the parameters.
type Status struct {
	Generation uint64
	Paused     bool
	Rate       float64
}

// Lines renders the status as HUD rows.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("Generation %d (%s)", s.Generation, state),
		fmt.Sprintf("Rate %s gen/s", strconv.FormatFloat(s.Rate, 'f', -1, 64)),
	}
}
