package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"gpgpu-life/internal/app"
	"gpgpu-life/internal/render"
	"gpgpu-life/internal/ui"
	"gpgpu-life/pkg/life"
)

type options struct {
	generations int
	workers     int
	every       int
	out         string
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var opts options
	flag.IntVar(&opts.generations, "generations", 100, "generations to simulate")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "goroutines per pass")
	flag.IntVar(&opts.every, "every", 10, "log the population every N generations (0 disables)")
	flag.StringVar(&opts.out, "out", "", "write the final canvas to this PNG file")
	flag.Parse()

	logger := cfg.Logger(os.Stderr)
	life.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *cfg, opts, logger, os.Stdout); err != nil {
		log.Fatalf("gol-headless: %v", err)
	}
}

func run(ctx context.Context, cfg app.Config, opts options, logger *slog.Logger, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, line := range ui.Parameters(cfg.Life).Lines() {
		logger.Debug(line)
	}

	s, err := life.NewScheduler(cfg.Life, life.WithWorkers(opts.workers), life.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := s.Seed(cfg.Pattern, cfg.Seed); err != nil {
		return err
	}

	for i := 0; i < opts.generations; i++ {
		if err := s.Step(ctx); err != nil {
			return fmt.Errorf("generation %d: %w", s.Generation()+1, err)
		}
		if opts.every > 0 && s.Generation()%uint64(opts.every) == 0 {
			logger.Info("progress", "generation", s.Generation(), "population", s.Snapshot().Population())
		}
	}
	fmt.Fprintf(stdout, "generation=%d population=%d\n", s.Generation(), s.Snapshot().Population())

	if opts.out == "" {
		return nil
	}
	canvas := life.NewCanvas(cfg.Life)
	if err := s.Render(ctx, canvas); err != nil {
		return err
	}
	if err := render.WritePNG(opts.out, canvas); err != nil {
		return err
	}
	logger.Info("canvas written", "path", opts.out)
	return nil
}
