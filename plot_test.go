package fnplot

import (
	"bytes"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

// lockedBuffer collects log output written from the finalizer goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestUnwrittenPlotWarns(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var log lockedBuffer
	SetLogger(slog.New(slog.NewTextHandler(&log, nil)))

	func() {
		g, err := NewGraph(0, 1, "lost", "lost.svg")
		if err != nil {
			t.Fatal(err)
		}
		g.AddFn(func(x float64) float64 { return x }, "")

		done, err := NewGraph(0, 1, "kept", "kept.svg")
		if err != nil {
			t.Fatal(err)
		}
		done.AddFn(func(x float64) float64 { return x }, "")
		if err := done.Render(&bytes.Buffer{}, "svg"); err != nil {
			t.Fatal(err)
		}

		if _, err := NewULPPlot[float32](exp64, 0, 1, Samples(10), Seed(1)); err != nil {
			t.Fatal(err)
		}
	}()

	want := []string{
		`level=WARN msg="graph plot \"lost\" was never written"`,
		`level=WARN msg="ulp plot \"\" was never written"`,
	}
	logged := func() bool {
		for _, w := range want {
			if !strings.Contains(log.String(), w) {
				return false
			}
		}
		return true
	}
	for i := 0; i < 20 && !logged(); i++ {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	if !logged() {
		t.Fatalf("missing never-written warnings, log:\n%s", log.String())
	}
	if strings.Contains(log.String(), `\"kept\"`) {
		t.Errorf("written graph reported as never written:\n%s", log.String())
	}
}
