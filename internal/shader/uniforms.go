package shader

import (
	_ "embed"

	"gpgpu-life/pkg/life"
)

// computeSource is the Rule Evaluator written in Kage.
//
//go:embed compute.kage
var computeSource []byte

// renderSource is the Tile Mapper written in Kage.
//
//go:embed render.kage
var renderSource []byte

// edgeCode maps an edge policy onto the Edge uniform.
func edgeCode(p life.EdgePolicy) float32 {
	switch p {
	case life.EdgeWrap:
		return 1
	case life.EdgeClampToEdge:
		return 2
	default:
		return 0
	}
}

func gridSize(cfg life.Config) []float32 {
	return []float32{float32(cfg.GridWidth), float32(cfg.GridHeight)}
}

// computeUniforms returns the uniforms of the compute shader.
func computeUniforms(cfg life.Config) map[string]any {
	return map[string]any{
		"GridSize": gridSize(cfg),
		"Edge":     edgeCode(cfg.Edge),
	}
}

// renderUniforms returns the uniforms of the render shader.
func renderUniforms(cfg life.Config) map[string]any {
	checked := float32(0)
	if cfg.Bounds == life.BoundsChecked {
		checked = 1
	}
	return map[string]any{
		"GridSize": gridSize(cfg),
		"TileSize": []float32{float32(cfg.TileWidth), float32(cfg.TileHeight)},
		"Checked":  checked,
		"Edge":     edgeCode(cfg.Edge),
	}
}
