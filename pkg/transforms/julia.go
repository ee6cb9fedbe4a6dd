package transforms

// Julia2 is the quadratic map z*z + C for a fixed C.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return z*z + j.C
}
