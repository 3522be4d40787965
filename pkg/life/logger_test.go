package life

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSchedulerLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newTestScheduler(t, 4, 4, EdgeWrap, WithLogger(l))
	if err := s.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"scheduler created", "edge=wrap", "generation complete", "generation=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("visible")
	SetLogger(nil)
	Logger().Info("silenced")

	if !strings.Contains(buf.String(), "visible") || strings.Contains(buf.String(), "silenced") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger must be disabled")
	}
}
