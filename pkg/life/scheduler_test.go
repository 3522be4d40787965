package life

import (
	"context"
	"errors"
	"testing"

	"gpgpu-life/pkg/core"
)

func newTestScheduler(t *testing.T, w, h int, edge EdgePolicy, opts ...Option) *Scheduler {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GridWidth = float64(w)
	cfg.GridHeight = float64(h)
	cfg.Edge = edge
	s, err := NewScheduler(cfg, append([]Option{WithWorkers(2)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func upload(t *testing.T, s *Scheduler, w, h int, alive ...[2]int) {
	t.Helper()
	tex := core.NewStateTexture(w, h)
	for _, c := range alive {
		tex.Set(c[0], c[1], true)
	}
	if err := s.Upload(tex); err != nil {
		t.Fatal(err)
	}
}

func expectAlive(t *testing.T, tex *core.StateTexture, alive ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range alive {
		want[c] = true
	}
	for y := 0; y < tex.H; y++ {
		for x := 0; x < tex.W; x++ {
			if got := tex.IsAlive(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	s := newTestScheduler(t, 3, 3, EdgeClampToDead)
	upload(t, s, 3, 3, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})

	if err := s.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, s.Snapshot(), [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	if err := s.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, s.Snapshot(), [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})

	if s.Generation() != 2 {
		t.Fatalf("generation=%d, want 2", s.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	for _, edge := range []EdgePolicy{EdgeWrap, EdgeClampToDead, EdgeClampToEdge} {
		s := newTestScheduler(t, 8, 8, edge)
		if err := s.Seed("block", 0); err != nil {
			t.Fatal(err)
		}
		before := s.Snapshot()
		if before.Population() != 4 {
			t.Fatalf("block pattern has %d cells", before.Population())
		}
		if err := s.Run(context.Background(), 25); err != nil {
			t.Fatal(err)
		}
		if !before.Equal(s.Snapshot()) {
			t.Fatalf("%v: block changed after 25 generations", edge)
		}
	}
}

func TestSingleCellDies(t *testing.T) {
	s := newTestScheduler(t, 5, 5, EdgeWrap)
	if err := s.Seed("single", 0); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := s.Snapshot().Population(); n != 0 {
		t.Fatalf("population=%d after one generation, want 0", n)
	}
}

func TestGliderTranslatesOnTorus(t *testing.T) {
	s := newTestScheduler(t, 10, 10, EdgeWrap)
	if err := s.Seed("glider", 0); err != nil {
		t.Fatal(err)
	}
	start := s.Snapshot()
	// A glider moves one cell diagonally every four generations, so it is
	// back where it started after 4*10 on a 10x10 torus.
	if err := s.Run(context.Background(), 40); err != nil {
		t.Fatal(err)
	}
	if !start.Equal(s.Snapshot()) {
		t.Fatal("glider did not return to its start position")
	}
	if err := s.Run(context.Background(), 4); err != nil {
		t.Fatal(err)
	}
	shifted := s.Snapshot()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			sx, sy := start.Wrap(x-1, y-1)
			if shifted.IsAlive(x, y) != start.IsAlive(sx, sy) {
				t.Fatalf("cell (%d,%d) not shifted by (1,1)", x, y)
			}
		}
	}
}

func TestRolesAlternate(t *testing.T) {
	s := newTestScheduler(t, 4, 4, EdgeWrap, WithInitial(BufferB))
	if s.Role(BufferB) != RoleCurrent || s.Role(BufferA) != RoleNext {
		t.Fatal("initial roles not honoured")
	}
	for i := 1; i <= 4; i++ {
		if err := s.Step(context.Background()); err != nil {
			t.Fatal(err)
		}
		wantCurrent := BufferB
		if i%2 == 1 {
			wantCurrent = BufferA
		}
		if s.CurrentBuffer() != wantCurrent {
			t.Fatalf("step %d: current=%v, want %v", i, s.CurrentBuffer(), wantCurrent)
		}
		other := wantCurrent ^ 1
		if s.Role(wantCurrent) != RoleCurrent || s.Role(other) != RoleNext {
			t.Fatalf("step %d: both buffers share a role", i)
		}
	}
}

func TestStepNeverWritesCurrent(t *testing.T) {
	s := newTestScheduler(t, 6, 6, EdgeClampToDead)
	if err := s.Seed("random", 3); err != nil {
		t.Fatal(err)
	}
	cur, next := s.bind()
	if next.aliases(cur) {
		t.Fatal("scheduler bound the same texture for both roles")
	}
	before := cur.tex.Clone()
	if err := s.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !before.Equal(cur.tex) {
		t.Fatal("rule pass mutated its read source")
	}
}

func TestStepCancelled(t *testing.T) {
	s := newTestScheduler(t, 4, 4, EdgeWrap)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Step(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if s.Generation() != 0 || s.CurrentBuffer() != BufferA {
		t.Fatal("cancelled step changed scheduler state")
	}
}

func TestUploadAndSeedErrors(t *testing.T) {
	s := newTestScheduler(t, 4, 4, EdgeWrap)
	if err := s.Upload(core.NewStateTexture(5, 4)); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err=%v, want ErrSizeMismatch", err)
	}
	if err := s.Upload(nil); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err=%v, want ErrSizeMismatch", err)
	}
	if err := s.Seed("no-such-pattern", 0); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err=%v, want ErrUnknownPattern", err)
	}
}

func TestUploadBinarizes(t *testing.T) {
	cases := []struct {
		name string
		v    float32
		want float32
	}{
		{"half", 0.5, core.Alive},
		{"below half", 0.49, core.Dead},
		{"above one", 2, core.Alive},
		{"negative", -1, core.Dead},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScheduler(t, 3, 3, EdgeClampToDead)
			src := core.NewStateTexture(3, 3)
			for i := range src.Cells() {
				src.Cells()[i] = tc.v
			}
			if err := s.Upload(src); err != nil {
				t.Fatal(err)
			}
			cur := s.Current()
			for y := 0; y < 3; y++ {
				for x := 0; x < 3; x++ {
					if got := cur.Texel(x, y); got != tc.want {
						t.Fatalf("texel (%d,%d) = %v, want %v", x, y, got, tc.want)
					}
				}
			}
			if src.Cells()[0] != tc.v {
				t.Fatal("upload modified the source texture")
			}
			if err := s.Step(context.Background()); err != nil {
				t.Fatal(err)
			}
			for _, v := range s.Snapshot().Cells() {
				if v != core.Dead && v != core.Alive {
					t.Fatalf("next generation holds %v", v)
				}
			}
		})
	}
}

func TestToggleAt(t *testing.T) {
	cfg := tileConfig(8, 10, 100, BoundsChecked, EdgeClampToDead)
	s, err := NewScheduler(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !s.ToggleAt(45, 12) {
		t.Fatal("pixel inside the grid was rejected")
	}
	if !s.Snapshot().IsAlive(4, 1) {
		t.Fatal("cell (4,1) not toggled")
	}
	if s.ToggleAt(95, 5) {
		t.Fatal("pixel past the grid edge was accepted")
	}
	s.ToggleAt(45, 12)
	if s.Snapshot().Population() != 0 {
		t.Fatal("second toggle did not clear the cell")
	}
}

func TestSchedulerRender(t *testing.T) {
	cfg := tileConfig(8, 10, 80, BoundsChecked, EdgeClampToDead)
	s, err := NewScheduler(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Toggle(4, 1)
	dst := NewCanvas(cfg)
	if err := s.Render(context.Background(), dst); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(45, 12); got != AliveColor {
		t.Fatalf("pixel (45,12)=%v, want alive", got)
	}
	if got := dst.RGBAAt(0, 0); got != DeadColor {
		t.Fatalf("pixel (0,0)=%v, want dead", got)
	}
}

func TestNewSchedulerRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth = 0
	if _, err := NewScheduler(cfg); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err=%v, want ErrInvalidConfiguration", err)
	}
	if _, err := NewScheduler(DefaultConfig(), WithInitial(Buffer(7))); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err=%v, want ErrInvalidConfiguration", err)
	}
}
