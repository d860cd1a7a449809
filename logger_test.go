package fnplot

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	g, err := NewGraph(0, 1, "logged", "logged.svg", Samples(3))
	if err != nil {
		t.Fatal(err)
	}
	g.AddFn(math.Exp, "")
	if err := g.Render(&bytes.Buffer{}, "svg"); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"graph: added function", "graph: scene built", "graph: rendered"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log lacks %q:\n%s", msg, buf.String())
		}
	}

	buf.Reset()
	Warnf("plot %q lost", "x")
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), `plot \"x\" lost`) {
		t.Errorf("unexpected warning %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
