package transforms

// A Step advances a point by one application of a map.
type Step interface {
	Next(z complex128) complex128
}

// A ParameterStep advances a point under a map parameterized per point.
type ParameterStep interface {
	Next(z complex128, c complex128) complex128
}

var (
	_ Step          = Julia2{}
	_ Step          = Affine{}
	_ ParameterStep = Mandelbrot{}
)
