//go:build ebiten

package ui

import (
	"image/color"

	"gpgpu-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 15
	hudWidth      = 220
)

// HUD draws generation status and the active configuration over the canvas.
// It starts hidden; H toggles it.
type HUD struct {
	params  []string
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD describing cfg.
func NewHUD(cfg life.Config) *HUD {
	h := &HUD{params: Parameters(cfg).Lines()}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel in the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	if h == nil || !h.visible {
		return
	}
	lines := append(status.Lines(), h.params...)
	height := 2*hudPadding + len(lines)*hudLineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudWidth, float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i < 2 {
			clr = color.RGBA{R: 255, G: 210, B: 90, A: 255}
		}
		text.Draw(screen, line, face, hudPadding, hudPadding+(i+1)*hudLineHeight-3, clr)
	}
}
