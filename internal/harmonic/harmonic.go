// Package harmonic tags complex field amplitudes with the time dependence
// they were derived under. An amplitude in the e^(+iwt) convention is the
// complex conjugate of the same field in the e^(-iwt) convention, so the two
// must never be added or solved together. Matrix and Vector carry the
// convention as a type parameter; the only way across is the explicit
// conversion functions in this package.
package harmonic

import (
	"gonum.org/v1/gonum/mat"
)

// Plus marks amplitudes of the e^(+iwt) convention.
type Plus struct{}

// Minus marks amplitudes of the e^(-iwt) convention.
type Minus struct{}

func (Plus) Name() string  { return "e^(+iwt)" }
func (Minus) Name() string { return "e^(-iwt)" }

// Convention is satisfied by Plus and Minus only.
type Convention interface {
	Plus | Minus
	Name() string
}

// NameOf returns the display name of convention C.
func NameOf[C Convention]() string {
	var c C
	return c.Name()
}

// Matrix is a dense square-or-rectangular complex matrix in convention C.
type Matrix[C Convention] struct {
	m *mat.CDense
}

func NewMatrix[C Convention](r, c int) *Matrix[C] {
	return &Matrix[C]{m: mat.NewCDense(r, c, nil)}
}

// MatrixFrom copies a in as a Matrix in convention C. The caller asserts
// the convention.
func MatrixFrom[C Convention](a mat.CMatrix) *Matrix[C] {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	m.Copy(a)
	return &Matrix[C]{m: m}
}

func (a *Matrix[C]) Dims() (r, c int) { return a.m.Dims() }
func (a *Matrix[C]) At(i, j int) complex128 { return a.m.At(i, j) }
func (a *Matrix[C]) Set(i, j int, v complex128) { a.m.Set(i, j, v) }
func (a *Matrix[C]) Convention() string { return NameOf[C]() }

// CDense returns a copy of the underlying values.
func (a *Matrix[C]) CDense() *mat.CDense {
	r, c := a.m.Dims()
	m := mat.NewCDense(r, c, nil)
	m.Copy(a.m)
	return m
}

// Vector is a complex column vector in convention C.
type Vector[C Convention] struct {
	data []complex128
}

func NewVector[C Convention](n int) *Vector[C] {
	return &Vector[C]{data: make([]complex128, n)}
}

// VectorFrom copies data in as a Vector in convention C.
func VectorFrom[C Convention](data []complex128) *Vector[C] {
	return &Vector[C]{data: append([]complex128(nil), data...)}
}

func (v *Vector[C]) Len() int { return len(v.data) }
func (v *Vector[C]) At(i int) complex128 { return v.data[i] }
func (v *Vector[C]) Set(i int, x complex128) { v.data[i] = x }
func (v *Vector[C]) Convention() string { return NameOf[C]() }

// RawData returns a copy of the elements.
func (v *Vector[C]) RawData() []complex128 {
	return append([]complex128(nil), v.data...)
}

func conjMatrix(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	m.Conj(a)
	return m
}

func conjSlice(s []complex128) []complex128 {
	out := make([]complex128, len(s))
	for i, x := range s {
		out[i] = complex(real(x), -imag(x))
	}
	return out
}

// MatrixToPlus converts an e^(-iwt) matrix to e^(+iwt).
func MatrixToPlus(a *Matrix[Minus]) *Matrix[Plus] {
	return &Matrix[Plus]{m: conjMatrix(a.m)}
}

// VectorToPlus converts an e^(-iwt) vector to e^(+iwt).
func VectorToPlus(v *Vector[Minus]) *Vector[Plus] {
	return &Vector[Plus]{data: conjSlice(v.data)}
}

// VectorToMinus converts an e^(+iwt) vector to e^(-iwt).
func VectorToMinus(v *Vector[Plus]) *Vector[Minus] {
	return &Vector[Minus]{data: conjSlice(v.data)}
}
