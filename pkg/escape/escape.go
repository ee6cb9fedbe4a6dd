// Package escape evaluates escape-time fractals.
package escape

import (
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

const (
	// Bound is the magnitude past which an orbit is known to diverge.
	Bound = 2.0

	DefaultMaxIterations = 100
)

// DefaultJuliaC is the Julia constant used when none is given.
var DefaultJuliaC = complex(-0.7, 0.27015)

// A Fractal scores a point on the plane by the number of iterates that stay within Bound,
// up to maxIterations.
type Fractal interface {
	Name() string
	Escape(p complex128, maxIterations int) int
}

var (
	_ Fractal = Mandelbrot{}
	_ Fractal = Julia{}
)

// Mandelbrot iterates from zero with the point as the parameter.
type Mandelbrot struct {
	step transforms.Mandelbrot
}

func NewMandelbrot() Mandelbrot {
	return Mandelbrot{}
}

func (Mandelbrot) Name() string {
	return "mandelbrot"
}

func (m Mandelbrot) Escape(c complex128, maxIterations int) int {
	z := complex128(0)
	for n := 0; n < maxIterations; n++ {
		z = m.step.Next(z, c)
		if Escaped(z) {
			return n
		}
	}

	return max(maxIterations, 0)
}

// Julia iterates from the point with a fixed parameter.
type Julia struct {
	step transforms.Julia2
}

func NewJulia(c complex128) Julia {
	return Julia{step: transforms.Julia2{C: c}}
}

func (Julia) Name() string {
	return "julia"
}

// C is the fixed parameter.
func (j Julia) C() complex128 {
	return j.step.C
}

func (j Julia) Escape(z complex128, maxIterations int) int {
	if Escaped(z) {
		return 0
	}

	for n := 0; n < maxIterations; n++ {
		z = j.step.Next(z)
		if Escaped(z) {
			return n
		}
	}

	return max(maxIterations, 0)
}

// Escaped reports whether |z| > Bound.
func Escaped(z complex128) bool {
	re, im := real(z), imag(z)
	return re*re+im*im > Bound*Bound
}

// Intensity normalizes an iteration count to [0, 1].
func Intensity(count, maxIterations int) float64 {
	if maxIterations <= 0 {
		return 0.0
	}

	return min(max(float64(count)/float64(maxIterations), 0.0), 1.0)
}
