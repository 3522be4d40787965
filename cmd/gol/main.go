//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gpgpu-life/internal/app"
	"gpgpu-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.Logger(os.Stderr)
	life.SetLogger(logger)

	game, err := app.New(*cfg, logger)
	if err != nil {
		log.Fatalf("gol: %v", err)
	}

	canvas := cfg.Life.CanvasSize()
	ebiten.SetWindowTitle("gpgpu-life — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(canvas.W, canvas.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
