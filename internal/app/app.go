//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"gpgpu-life/internal/core"
	"gpgpu-life/internal/shader"
	"gpgpu-life/internal/ui"
	pcore "gpgpu-life/pkg/core"
	"gpgpu-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the GPU pipeline to the ebiten.Game interface.
type Game struct {
	cfg    Config
	pipe   *shader.Pipeline
	hud    *ui.HUD
	pacer  *core.Pacer
	mirror *pcore.StateTexture
	log    *slog.Logger

	paused   bool
	tickOnce bool
	seeded   bool
	seed     int64
}

// New constructs a Game for the provided configuration. The first generation
// is uploaded on the first Update, once the graphics context exists.
func New(cfg Config, log *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pipe, err := shader.NewPipeline(cfg.Life, log)
	if err != nil {
		return nil, err
	}
	grid := cfg.Life.GridSize()
	return &Game{
		cfg:    cfg,
		pipe:   pipe,
		hud:    ui.NewHUD(cfg.Life),
		pacer:  core.NewPacer(cfg.GPS, 4),
		mirror: pcore.NewStateTexture(grid.W, grid.H),
		log:    log,
		seed:   cfg.Seed,
	}, nil
}

// Reset reseeds the configured pattern and restarts the generation count.
func (g *Game) Reset(seed int64) error {
	p, err := life.LookupPattern(g.cfg.Pattern)
	if err != nil {
		return err
	}
	g.seed = seed
	p(g.mirror, seed)
	if err := g.pipe.Upload(g.mirror); err != nil {
		return err
	}
	g.pipe.ResetGeneration()
	g.pacer.Reset()
	g.tickOnce = false
	g.seeded = true
	g.log.Info("reset", "pattern", g.cfg.Pattern, "seed", seed)
	return nil
}

// Clear kills every cell.
func (g *Game) Clear() error {
	g.mirror.Clear()
	return g.pipe.Upload(g.mirror)
}

// toggleAt flips the cell under canvas pixel (px, py) in the CURRENT image.
func (g *Game) toggleAt(px, py int) error {
	x, y := g.cfg.Life.CellAt(px, py)
	if !g.mirror.In(x, y) {
		return nil
	}
	if err := g.pipe.Readback(g.mirror); err != nil {
		return err
	}
	alive := g.mirror.Toggle(x, y)
	g.log.Debug("cell toggled", "x", x, "y", y, "alive", alive)
	return g.pipe.Upload(g.mirror)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if !g.seeded {
		if err := g.Reset(g.seed); err != nil {
			return fmt.Errorf("app: seed: %w", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.Clear(); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.toggleAt(ebiten.CursorPosition()); err != nil {
			return err
		}
	}

	g.hud.Update()

	steps := 0
	switch {
	case g.tickOnce:
		steps = 1
		g.tickOnce = false
	case g.paused:
	case g.cfg.GPS <= 0:
		steps = 1
	default:
		steps = g.pacer.Due(time.Now())
	}
	for i := 0; i < steps; i++ {
		g.pipe.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pipe.Draw(screen)
	g.hud.Draw(screen, ui.Status{
		Generation: g.pipe.Generation(),
		Paused:     g.paused,
		Rate:       g.rate(),
	})
}

func (g *Game) rate() float64 {
	if g.cfg.GPS > 0 {
		return g.cfg.GPS
	}
	return float64(ebiten.TPS())
}

// Layout returns the logical screen size, which is the canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.cfg.Life.CanvasSize()
	return s.W, s.H
}
