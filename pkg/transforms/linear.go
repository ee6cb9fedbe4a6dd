package transforms

// Affine scales the real and imaginary axes independently, then translates.
type Affine struct {
	ScaleRe float64
	ScaleIm float64
	Add     complex128
}

func (a Affine) Next(z complex128) complex128 {
	return complex(real(z)*a.ScaleRe, imag(z)*a.ScaleIm) + a.Add
}

// Inverse returns the map undoing a. Both scales must be non-zero.
func (a Affine) Inverse() Affine {
	return Affine{
		ScaleRe: 1.0 / a.ScaleRe,
		ScaleIm: 1.0 / a.ScaleIm,
		Add:     complex(-real(a.Add)/a.ScaleRe, -imag(a.Add)/a.ScaleIm),
	}
}
