//go:build ebiten

package shader

import (
	"fmt"
	"log/slog"

	"gpgpu-life/internal/render"
	"gpgpu-life/pkg/core"
	"gpgpu-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// readImage is the CURRENT texture, bound as a shader source.
type readImage struct{ img *ebiten.Image }

// writeImage is the NEXT texture, bound as a draw target.
type writeImage struct{ img *ebiten.Image }

// Pipeline runs the Rule Evaluator and Tile Mapper as Kage shaders over a
// pair of ping-pong images. ebiten executes draw commands in submission
// order, so a compute draw into NEXT is complete before any later draw reads
// that image.
type Pipeline struct {
	cfg        life.Config
	compute    *ebiten.Shader
	render     *ebiten.Shader
	images     [2]*ebiten.Image
	current    life.Buffer
	generation uint64

	computeUniforms map[string]any
	renderUniforms  map[string]any
	pixels          []byte
	vertices        []ebiten.Vertex
	indices         []uint16

	log *slog.Logger
}

// NewPipeline compiles both shaders and allocates the state images.
func NewPipeline(cfg life.Config, log *slog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = life.Logger()
	}
	compute, err := ebiten.NewShader(computeSource)
	if err != nil {
		return nil, fmt.Errorf("shader: compile compute pass: %w", err)
	}
	rnd, err := ebiten.NewShader(renderSource)
	if err != nil {
		compute.Dispose()
		return nil, fmt.Errorf("shader: compile render pass: %w", err)
	}

	grid := cfg.GridSize()
	canvas := cfg.CanvasSize()
	p := &Pipeline{
		cfg:     cfg,
		compute: compute,
		render:  rnd,
		images: [2]*ebiten.Image{
			ebiten.NewImage(grid.W, grid.H),
			ebiten.NewImage(grid.W, grid.H),
		},
		computeUniforms: computeUniforms(cfg),
		renderUniforms:  renderUniforms(cfg),
		pixels:          make([]byte, 4*grid.Area()),
		indices:         []uint16{0, 1, 2, 1, 2, 3},
		log:             log,
	}
	p.vertices = quad(canvas, grid)
	log.Info("gpu pipeline ready",
		"grid", fmt.Sprintf("%dx%d", grid.W, grid.H),
		"canvas", fmt.Sprintf("%dx%d", canvas.W, canvas.H))
	return p, nil
}

// quad covers the whole canvas with source coordinates spanning the grid.
func quad(canvas, grid core.Size) []ebiten.Vertex {
	cw, ch := float32(canvas.W), float32(canvas.H)
	gw, gh := float32(grid.W), float32(grid.H)
	corners := [4][4]float32{
		{0, 0, 0, 0},
		{cw, 0, gw, 0},
		{0, ch, 0, gh},
		{cw, ch, gw, gh},
	}
	vs := make([]ebiten.Vertex, len(corners))
	for i, c := range corners {
		vs[i] = ebiten.Vertex{
			DstX: c[0], DstY: c[1],
			SrcX: c[2], SrcY: c[3],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	return vs
}

// Generation returns the number of completed compute passes.
func (p *Pipeline) Generation() uint64 { return p.generation }

// Role reports the role b plays for the next step.
func (p *Pipeline) Role(b life.Buffer) life.BufferRole {
	if b == p.current {
		return life.RoleCurrent
	}
	return life.RoleNext
}

func (p *Pipeline) bind() (readImage, writeImage) {
	return readImage{img: p.images[p.current]}, writeImage{img: p.images[p.current^1]}
}

// Upload writes tex into the CURRENT image.
func (p *Pipeline) Upload(tex *core.StateTexture) error {
	if tex.Size() != p.cfg.GridSize() {
		return fmt.Errorf("%w: want %v, got %v", life.ErrSizeMismatch, p.cfg.GridSize(), tex.Size())
	}
	if err := render.EncodeRGBA(p.pixels, tex); err != nil {
		return err
	}
	p.images[p.current].WritePixels(p.pixels)
	p.log.Info("generation uploaded", "population", tex.Population(), "buffer", p.current.String())
	return nil
}

// Readback copies the CURRENT image into tex.
func (p *Pipeline) Readback(tex *core.StateTexture) error {
	if tex.Size() != p.cfg.GridSize() {
		return fmt.Errorf("%w: want %v, got %v", life.ErrSizeMismatch, p.cfg.GridSize(), tex.Size())
	}
	p.images[p.current].ReadPixels(p.pixels)
	return render.DecodeRGBA(tex, p.pixels)
}

// ResetGeneration zeroes the generation counter after a new upload.
func (p *Pipeline) ResetGeneration() { p.generation = 0 }

// Step submits one compute pass and flips the buffer roles.
func (p *Pipeline) Step() {
	cur, next := p.bind()
	p.computePass(cur, next)
	p.current ^= 1
	p.generation++
	p.log.Debug("generation complete", "generation", p.generation, "current", p.current.String())
}

func (p *Pipeline) computePass(cur readImage, next writeImage) {
	size := p.cfg.GridSize()
	op := &ebiten.DrawRectShaderOptions{
		Blend:    ebiten.BlendCopy,
		Uniforms: p.computeUniforms,
	}
	op.Images[0] = cur.img
	next.img.DrawRectShader(size.W, size.H, p.compute, op)
}

// Draw runs the render pass over the CURRENT image onto dst.
func (p *Pipeline) Draw(dst *ebiten.Image) {
	cur, _ := p.bind()
	op := &ebiten.DrawTrianglesShaderOptions{
		Blend:    ebiten.BlendCopy,
		Uniforms: p.renderUniforms,
	}
	op.Images[0] = cur.img
	dst.DrawTrianglesShader(p.vertices, p.indices, p.render, op)
}

// Dispose releases the GPU resources.
func (p *Pipeline) Dispose() {
	for _, img := range p.images {
		img.Dispose()
	}
	p.compute.Dispose()
	p.render.Dispose()
}
