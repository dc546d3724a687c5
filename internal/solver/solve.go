// Package solver solves dense complex linear systems A x = b.
package solver

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"em_casing/internal/harmonic"
)

var (
	ErrSingularMatrix = errors.New("solver: matrix is singular or ill-conditioned")
	ErrShape          = errors.New("solver: dimension mismatch")
)

// ConditionTolerance is the largest condition number accepted as solvable.
const ConditionTolerance = mat.ConditionTolerance

/*
Solve the complex system a x = b

The system is solved through its real equivalent of size 2N

	| Re A  -Im A | | Re x |   | Re b |
	| Im A   Re A | | Im x | = | Im b |

with an LU factorization. Both operands must be in the same time convention,
and so is the result.

Returns:
	x, or ErrSingularMatrix wrapping the condition number when the system is
	numerically singular
*/
func Solve[C harmonic.Convention](a *harmonic.Matrix[C], b *harmonic.Vector[C]) (*harmonic.Vector[C], error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: matrix is %dx%d", ErrShape, r, c)
	}
	if b.Len() != r {
		return nil, fmt.Errorf("%w: matrix is %dx%d, vector has %d elements", ErrShape, r, c, b.Len())
	}
	n := r
	if n == 0 {
		return harmonic.NewVector[C](0), nil
	}

	m := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			m.Set(i, j, real(v))
			m.Set(i, j+n, -imag(v))
			m.Set(i+n, j, imag(v))
			m.Set(i+n, j+n, real(v))
		}
	}
	rhs := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		v := b.At(i)
		rhs.SetVec(i, real(v))
		rhs.SetVec(i+n, imag(v))
	}

	var lu mat.LU
	lu.Factorize(m)
	if cond := lu.Cond(); !(cond <= ConditionTolerance) {
		return nil, fmt.Errorf("%w: condition number %.4e", ErrSingularMatrix, cond)
	}

	var sol mat.VecDense
	if err := lu.SolveVecTo(&sol, false, rhs); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: condition number %.4e", ErrSingularMatrix, float64(cond))
		}
		return nil, err
	}

	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(sol.AtVec(i), sol.AtVec(i+n))
	}
	return harmonic.VectorFrom[C](x), nil
}

// Residual returns the max-norm of a x - b.
func Residual[C harmonic.Convention](a *harmonic.Matrix[C], x, b *harmonic.Vector[C]) float64 {
	r, _ := a.Dims()
	var worst float64
	for i := 0; i < r; i++ {
		var s complex128
		for j := 0; j < x.Len(); j++ {
			s += a.At(i, j) * x.At(j)
		}
		if d := cmplx.Abs(s - b.At(i)); d > worst {
			worst = d
		}
	}
	return worst
}
