package hankel

import (
	"fmt"
	"math"
)

// Kernel evaluates an integrand at every transform variable in lambda.
// The result must have the same length as lambda.
type Kernel func(lambda []float64) []complex128

/*
Order-1 Hankel transform of kernel at radius r

	H(r) = (1/r) * sum_n W_n * kernel(b_n / r)

Args:
	kernel: integrand in the wavenumber domain
	r: radial distance, m (> 0)

Returns:
	integral over lambda of kernel(lambda) * J1(lambda * r)
*/
func (f Filter) J1(kernel Kernel, r float64) (complex128, error) {
	return f.transform(f.j1, kernel, r)
}

// J0 is the order-0 counterpart of J1.
func (f Filter) J0(kernel Kernel, r float64) (complex128, error) {
	if f.j0 == nil {
		return 0, fmt.Errorf("%w: filter %s, order 0", ErrNoWeights, f.kind)
	}
	return f.transform(f.j0, kernel, r)
}

// Lambda returns the transform variables the filter samples at radius r.
func (f Filter) Lambda(r float64) ([]float64, error) {
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("%w: r=%g", ErrNonPositiveRadius, r)
	}
	lambda := make([]float64, len(f.base))
	for n, b := range f.base {
		lambda[n] = b / r
	}
	return lambda, nil
}

func (f Filter) transform(w []float64, kernel Kernel, r float64) (complex128, error) {
	lambda, err := f.Lambda(r)
	if err != nil {
		return 0, err
	}
	k := kernel(lambda)
	if len(k) != len(w) {
		return 0, fmt.Errorf("%w: got %d values for %d abscissae", ErrShapeMismatch, len(k), len(w))
	}

	var sum complex128
	for n, wn := range w {
		sum += complex(wn, 0) * k[n]
	}
	return sum / complex(r, 0), nil
}
