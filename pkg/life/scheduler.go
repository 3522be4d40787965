package life

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"gpgpu-life/pkg/core"
)

// Buffer names one of the two state textures.
type Buffer uint8

const (
	BufferA Buffer = iota
	BufferB
)

func (b Buffer) String() string {
	if b == BufferA {
		return "A"
	}
	return "B"
}

// BufferRole is the role a texture plays during the next generation step.
type BufferRole uint8

const (
	RoleCurrent BufferRole = iota
	RoleNext
)

func (r BufferRole) String() string {
	if r == RoleCurrent {
		return "current"
	}
	return "next"
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWorkers bounds the number of goroutines per pass. Zero or less uses
// runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(s *Scheduler) { s.workers = n }
}

// WithLogger sets the scheduler's logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithInitial selects which texture starts as CURRENT.
func WithInitial(b Buffer) Option {
	return func(s *Scheduler) { s.current = b }
}

// Scheduler owns the two state textures and alternates their roles. Exactly
// one texture is CURRENT at any time; the Rule Evaluator reads it and writes
// the other, and the roles flip once the pass has completed.
//
// A Scheduler is not safe for concurrent use. Passes run inside Step and
// Render, so a caller that serializes those calls never observes a partly
// written generation.
type Scheduler struct {
	cfg        Config
	bufs       [2]*core.StateTexture
	current    Buffer
	generation uint64
	workers    int
	log        *slog.Logger
}

// NewScheduler validates cfg and allocates both textures, dead.
func NewScheduler(cfg Config, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := cfg.GridSize()
	s := &Scheduler{
		cfg:  cfg,
		bufs: [2]*core.StateTexture{core.NewStateTexture(size.W, size.H), core.NewStateTexture(size.W, size.H)},
		log:  Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, b := range s.bufs {
		if b.Size() != size {
			return nil, fmt.Errorf("%w: grid %dx%d allocated as %dx%d",
				ErrInvalidConfiguration, size.W, size.H, b.W, b.H)
		}
	}
	if s.current != BufferA && s.current != BufferB {
		return nil, fmt.Errorf("%w: initial buffer %d", ErrInvalidConfiguration, s.current)
	}
	s.log.Info("scheduler created",
		"grid", fmt.Sprintf("%dx%d", size.W, size.H),
		"bounds", cfg.Bounds.String(),
		"edge", cfg.Edge.String(),
		"current", s.current.String())
	return s, nil
}

// Config returns the scheduler configuration.
func (s *Scheduler) Config() Config { return s.cfg }

// Generation returns the number of completed Rule Evaluator passes.
func (s *Scheduler) Generation() uint64 { return s.generation }

// Role reports the role b plays for the next step.
func (s *Scheduler) Role(b Buffer) BufferRole {
	if b == s.current {
		return RoleCurrent
	}
	return RoleNext
}

// CurrentBuffer names the CURRENT texture.
func (s *Scheduler) CurrentBuffer() Buffer { return s.current }

// Current issues a read handle for the CURRENT texture.
func (s *Scheduler) Current() ReadHandle {
	return ReadHandle{tex: s.bufs[s.current], edge: s.cfg.Edge}
}

func (s *Scheduler) bind() (ReadHandle, WriteHandle) {
	next := s.current ^ 1
	return s.Current(), WriteHandle{tex: s.bufs[next]}
}

// Upload replaces the CURRENT generation with src. Cells of at least 0.5 are
// stored alive and all others dead, the same threshold RGBA readback uses.
// The generation counter is left alone.
func (s *Scheduler) Upload(src *core.StateTexture) error {
	if src == nil {
		return ErrSizeMismatch
	}
	if !s.bufs[s.current].CopyFrom(src) {
		return fmt.Errorf("%w: want %dx%d, got %dx%d",
			ErrSizeMismatch, s.cfg.GridSize().W, s.cfg.GridSize().H, src.W, src.H)
	}
	s.bufs[s.current].Binarize()
	s.log.Info("generation uploaded", "population", s.bufs[s.current].Population(), "buffer", s.current.String())
	return nil
}

// Seed writes the named pattern into CURRENT.
func (s *Scheduler) Seed(name string, seed int64) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	size := s.cfg.GridSize()
	tex := core.NewStateTexture(size.W, size.H)
	p(tex, seed)
	return s.Upload(tex)
}

// Step advances the automaton by one generation. When ctx is done before the
// pass starts, nothing changes and ctx.Err is returned.
func (s *Scheduler) Step(ctx context.Context) error {
	cur, next := s.bind()
	if err := Evaluate(ctx, cur, next, s.workers); err != nil {
		return err
	}
	s.current ^= 1
	s.generation++
	s.log.Debug("generation complete", "generation", s.generation, "current", s.current.String())
	return nil
}

// Run advances n generations, stopping early if ctx is cancelled between
// passes.
func (s *Scheduler) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the CURRENT generation into dst with the Tile Mapper.
func (s *Scheduler) Render(ctx context.Context, dst *image.RGBA) error {
	return Render(ctx, s.Current(), s.cfg, dst, s.workers)
}

// Toggle flips cell (x, y) of CURRENT between passes and reports the new
// state. Out of range cells are ignored.
func (s *Scheduler) Toggle(x, y int) bool {
	return s.bufs[s.current].Toggle(x, y)
}

// ToggleAt flips the cell under canvas pixel (px, py). It reports whether the
// pixel maps to a cell inside the grid.
func (s *Scheduler) ToggleAt(px, py int) bool {
	x, y := s.cfg.CellAt(px, py)
	if !s.bufs[s.current].In(x, y) {
		return false
	}
	s.Toggle(x, y)
	return true
}

// Snapshot returns a copy of the CURRENT generation.
func (s *Scheduler) Snapshot() *core.StateTexture {
	return s.bufs[s.current].Clone()
}
