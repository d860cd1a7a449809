package fnplot

import (
	"fmt"
	"math"
	"runtime"
)

// Golden is the aspect ratio of all plots.
const Golden = 1.61803

// Canvas is the outer size of a plot and the margins around its graph area.
type Canvas struct {
	Width, Height            int
	Top, Left, Bottom, Right int
}

// NewCanvas returns a canvas of the given width with golden ratio height.
// A canvas with a title has room above the graph area for it.
func NewCanvas(width int, title bool) (Canvas, error) {
	if width <= 1 {
		return Canvas{}, domainErrorf("width = %d, which is too small", width)
	}
	c := Canvas{
		Width:  width,
		Height: int(math.Floor(float64(width) / Golden)),
		Top:    40,
		Left:   25,
		Bottom: 20,
		Right:  20,
	}
	if !title {
		c.Top = 10
		c.Left = 15
	}
	if c.GraphWidth() <= 0 || c.GraphHeight() <= 0 {
		return Canvas{}, domainErrorf("width = %d leaves no room for the graph", width)
	}
	return c, nil
}

// GraphWidth is the width of the area inside the margins.
func (c Canvas) GraphWidth() int { return c.Width - c.Left - c.Right }

// GraphHeight is the height of the area inside the margins.
func (c Canvas) GraphHeight() int { return c.Height - c.Top - c.Bottom }

// -------------------------------------------------------------------------
// Lifecycle

// state tracks the write-once lifecycle shared by all plots.
type state int

const (
	collecting state = iota
	written
)

func (s state) String() string {
	if s == written {
		return "written"
	}
	return "collecting"
}

// lifecycle is held by every plot. It is allocated on its own so that a
// finalizer can watch it.
type lifecycle struct {
	state state
	scene *Scene
}

// newLifecycle arranges for a warning if the plot is garbage collected
// while still collecting data: a plot never written is a programming error.
func newLifecycle(kind, title string) *lifecycle {
	l := &lifecycle{}
	runtime.SetFinalizer(l, func(l *lifecycle) {
		if l.state != written {
			Warnf("%s plot %q was never written", kind, title)
		}
	})
	return l
}

// check fails with ErrState once the plot has been written.
func (l *lifecycle) check(op string) error {
	if l.state == written {
		return fmt.Errorf("%w: cannot %s, plot is %s", ErrState, op, l.state)
	}
	return nil
}

// finish freezes the plot with its rendered scene.
func (l *lifecycle) finish(s *Scene) {
	l.state = written
	l.scene = s
}
