package config

import (
	"context"
	"testing"

	"github.com/willbeason/escape-fractal/pkg/escape"
)

func TestDefaultConfigValid(t *testing.T) {
	for _, kind := range []Kind{Mandelbrot, Julia} {
		cfg := DefaultConfig(kind)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%v: Validate: %v", kind, err)
		}
		if cfg.Width != 1920 || cfg.Height != 1080 {
			t.Errorf("%v: default size %dx%d", kind, cfg.Width, cfg.Height)
		}
		if cfg.Title != "Mandelbrot and Julia Sets" {
			t.Errorf("%v: default title %q", kind, cfg.Title)
		}
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }},
		{name: "negative height", modify: func(c *Config) { c.Height = -1 }},
		{name: "zero iterations", modify: func(c *Config) { c.Iterations = 0 }},
		{name: "zero workers", modify: func(c *Config) { c.Workers = 0 }},
		{name: "unknown palette", modify: func(c *Config) { c.Palette = "sepia" }},
		{name: "unknown kind", modify: func(c *Config) { c.Kind = Kind(7) }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig(Mandelbrot)
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFractal(t *testing.T) {
	if got := DefaultConfig(Mandelbrot).Fractal().Name(); got != "mandelbrot" {
		t.Errorf("Mandelbrot fractal %q", got)
	}

	cfg := DefaultConfig(Julia)
	j, ok := cfg.Fractal().(escape.Julia)
	if !ok {
		t.Fatalf("Julia config built %T", cfg.Fractal())
	}
	if j.C() != escape.DefaultJuliaC {
		t.Errorf("default Julia constant %v", j.C())
	}

	cfg.CReal, cfg.CImag = 0.285, 0.01
	if got := cfg.Fractal().(escape.Julia).C(); got != complex(0.285, 0.01) {
		t.Errorf("Julia constant %v", got)
	}
}

func TestScene(t *testing.T) {
	cfg := DefaultConfig(Julia)
	cfg.Width, cfg.Height, cfg.Palette = 16, 9, "hue"

	sc, err := cfg.Scene()
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}
	if w, h := sc.Size(); w != 16 || h != 9 {
		t.Fatalf("scene size %dx%d", w, h)
	}
	if _, err := sc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	cfg.Palette = "nope"
	if _, err := cfg.Scene(); err == nil {
		t.Fatal("expected error for unknown palette")
	}
}

func TestKindString(t *testing.T) {
	if Mandelbrot.String() != "mandelbrot" || Julia.String() != "julia" || Kind(9).String() != "unknown" {
		t.Fatal("unexpected kind names")
	}
}
