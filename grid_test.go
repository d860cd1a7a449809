package fnplot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
)

func TestEvenGridlines(t *testing.T) {
	tr, err := NewTransform(Interval{0, 10}, Interval{-4, 4}, 100, 80)
	if err != nil {
		t.Fatal(err)
	}
	lines := EvenGridlines(tr, 4, 5)
	want := []Gridline{
		{Horizontal: true, Value: -2, Label: "-2"},
		{Horizontal: true, Value: 0, Label: "0"},
		{Horizontal: true, Value: 2, Label: "2"},
		{Horizontal: true, Value: 4, Label: "4"},
		{Value: 2, Label: "2"},
		{Value: 4, Label: "4"},
		{Value: 6, Label: "6"},
		{Value: 8, Label: "8"},
		{Value: 10, Label: "10"},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.5, "0.5"},
		{1.0 / 3, "0.3333"},
		{-0.3667, "-0.3667"},
		{1e6, "1e+06"},
		{123456, "1.235e+05"},
	}
	for _, tc := range tests {
		if got := formatLabel(tc.v); got != tc.want {
			t.Errorf("formatLabel(%g) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestULPGridlines(t *testing.T) {
	tests := []struct {
		y    Interval
		want []float64
	}{
		{Interval{-0.5, 0.5}, []float64{-0.5, 0.5}},
		{Interval{-0.5, 2.2}, []float64{-0.5, 0.5, 1, 1.5, 2}},
		{Interval{-3, 3}, []float64{-3, -2.5, -2, -1.5, -1, -0.5, 0.5, 1, 1.5, 2, 2.5, 3}},
		{Interval{-0.25, 0.25}, nil},
	}
	for _, tc := range tests {
		tr, err := NewTransform(Interval{1, 2}, tc.y, 100, 60)
		if err != nil {
			t.Fatal(err)
		}
		var got []float64
		vertical := 0
		for _, gl := range ULPGridlines(tr, 4) {
			if gl.Horizontal {
				got = append(got, gl.Value)
			} else {
				vertical++
			}
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("range %s: mismatch (-want +got):\n%s", tc.y, diff)
		}
		if vertical != 4 {
			t.Errorf("range %s: %d vertical lines, want 4", tc.y, vertical)
		}
	}
}

func TestTickerGridlines(t *testing.T) {
	tr, err := NewTransform(Interval{0, 10}, Interval{-3, 3}, 100, 60)
	if err != nil {
		t.Fatal(err)
	}
	lines := TickerGridlines(tr, plot.DefaultTicks{}, plot.DefaultTicks{})
	if len(lines) == 0 {
		t.Fatal("no gridlines from default ticks")
	}
	for _, gl := range lines {
		r := tr.X
		if gl.Horizontal {
			r = tr.Y
		}
		if gl.Value <= r.Min || gl.Value >= r.Max {
			t.Errorf("gridline at %g outside open range %s", gl.Value, r)
		}
		if gl.Label == "" {
			t.Errorf("gridline at %g without label", gl.Value)
		}
	}
	if got := TickerGridlines(tr, nil, nil); len(got) != 0 {
		t.Errorf("nil tickers produced %d gridlines", len(got))
	}
}

func TestGridGrobs(t *testing.T) {
	tr, err := NewTransform(Interval{0, 10}, Interval{0, 8}, 100, 80)
	if err != nil {
		t.Fatal(err)
	}
	grobs := gridGrobs(tr, EvenGridlines(tr, 2, 2), 25, DefaultTheme)
	if len(grobs) != 8 {
		t.Fatalf("got %d grobs, want 4 lines with 4 labels", len(grobs))
	}
	h := grobs[0].(GrobLine)
	if h.Y0 != 40 || h.Y1 != 40 || h.X0 != 0 || h.X1 != 100 {
		t.Errorf("horizontal gridline at %+v", h)
	}
	if h.LineType != DashedLine {
		t.Errorf("gridline drawn %v, want dashed", h.LineType)
	}
	label := grobs[1].(GrobText)
	if label.Text != "4" || label.Angle != -90 || label.X != -12.5 {
		t.Errorf("horizontal label %+v", label)
	}
	v := grobs[4].(GrobLine)
	if v.X0 != 50 || v.X1 != 50 || v.Y0 != 0 || v.Y1 != 80 {
		t.Errorf("vertical gridline at %+v", v)
	}
}
