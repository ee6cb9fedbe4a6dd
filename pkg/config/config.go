// Package config holds the settings shared by the fractal commands.
package config

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/scene"
)

const (
	DefaultTitle  = "Mandelbrot and Julia Sets"
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Kind is the fractal a binary is built to show.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	default:
		return "unknown"
	}
}

// Config is everything the commands read from flags.
type Config struct {
	Kind Kind

	Title      string
	Width      int
	Height     int
	Iterations int
	Workers    int
	Palette    string

	// CReal and CImag are the Julia constant; ignored for the Mandelbrot set.
	CReal float64
	CImag float64
}

func DefaultConfig(kind Kind) Config {
	return Config{
		Kind:       kind,
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Iterations: escape.DefaultMaxIterations,
		Workers:    runtime.NumCPU(),
		Palette:    palette.Default,
		CReal:      real(escape.DefaultJuliaC),
		CImag:      imag(escape.DefaultJuliaC),
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Iterations <= 0 {
		return errors.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := palette.ByName(c.Palette); err != nil {
		return err
	}
	if c.Kind != Mandelbrot && c.Kind != Julia {
		return errors.Errorf("unknown fractal kind %d", int(c.Kind))
	}

	return nil
}

func (c Config) Fractal() escape.Fractal {
	if c.Kind == Julia {
		return escape.NewJulia(complex(c.CReal, c.CImag))
	}
	return escape.NewMandelbrot()
}

// Scene builds a scene of the configured size. The config must be valid.
func (c Config) Scene() (*scene.Scene, error) {
	p, err := palette.ByName(c.Palette)
	if err != nil {
		return nil, err
	}

	return scene.New(scene.Options{
		Fractal:    c.Fractal(),
		Palette:    p,
		Iterations: c.Iterations,
		Workers:    c.Workers,
	}, c.Width, c.Height), nil
}
