package fnplot

import (
	"errors"
	"image/color"
	"testing"

	"gonum.org/v1/plot/plotutil"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"Blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"steelblue", color.NRGBA{0x46, 0x82, 0xb4, 0xff}},
		{"", color.NRGBA{0x46, 0x82, 0xb4, 0xff}},
		{" gray20 ", color.NRGBA{0x33, 0x33, 0x33, 0xff}},
		{"chartreuse", color.NRGBA{0x7f, 0xff, 0x00, 0xff}},
	}

	for i, tc := range tests {
		got, err := ParseColor(tc.s, 0)
		if err != nil {
			t.Errorf("%d %q: unexpected error %s", i, tc.s, err)
			continue
		}
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestParseColorAuto(t *testing.T) {
	for i := 0; i < 4; i++ {
		got, err := ParseColor("auto", i)
		if err != nil {
			t.Fatal(err)
		}
		if colorString(got) != colorString(plotutil.Color(i)) {
			t.Errorf("auto color %d = %s, want %s", i, colorString(got), colorString(plotutil.Color(i)))
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, s := range []string{"nonsens", "#12", "#1256zz", "#1256abcdef"} {
		if _, err := ParseColor(s, 0); !errors.Is(err, ErrDomain) {
			t.Errorf("%q: got %v, want ErrDomain", s, err)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	got := SetAlpha(color.RGBA{0x80, 0x40, 0x20, 0xff}, 0.5)
	want := color.NRGBA{0x80, 0x40, 0x20, 0x7f}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineTypeDashes(t *testing.T) {
	if d := SolidLine.Dashes(); d != nil {
		t.Errorf("solid line has dashes %v", d)
	}
	if d := DashedLine.Dashes(); len(d) != 2 || d[0] != 4 || d[1] != 4 {
		t.Errorf("dashed line has dashes %v, want [4 4]", d)
	}
	if BlankPoint.Glyph() != nil {
		t.Error("blank point has a glyph")
	}
}
