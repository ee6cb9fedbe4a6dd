package palette

import (
	"image/color"
	"math"
	"testing"
)

func TestGray(t *testing.T) {
	tcs := []struct {
		t    float64
		want uint8
	}{
		{t: 0, want: 0},
		{t: 1, want: 255},
		{t: 0.5, want: 128},
		{t: -3, want: 0},
		{t: 7, want: 255},
		{t: math.NaN(), want: 0},
	}

	for _, tc := range tcs {
		got := Gray{}.Color(tc.t)
		want := color.RGBA{R: tc.want, G: tc.want, B: tc.want, A: 0xff}
		if got != want {
			t.Errorf("Color(%v) = %v, want %v", tc.t, got, want)
		}
	}
}

func TestHue(t *testing.T) {
	p, err := ByName("hue")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}

	for _, v := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if c := p.Color(v); c.A != 0xff {
			t.Errorf("Color(%v) alpha = %d", v, c.A)
		}
	}

	if p.Color(-1) != p.Color(0) {
		t.Error("intensity below 0 not clamped")
	}
	if p.Color(2) != p.Color(1) {
		t.Error("intensity above 1 not clamped")
	}
	if p.Color(0.2) == p.Color(0.8) {
		t.Error("distinct intensities share a colour")
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}

	if _, err := ByName(Default); err != nil {
		t.Fatalf("default palette: %v", err)
	}
	if _, err := ByName("plaid"); err == nil {
		t.Fatal("expected error for unknown palette")
	}
}
