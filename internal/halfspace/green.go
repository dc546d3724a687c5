package halfspace

import (
	"em_casing/internal/hankel"
)

// annular returns ro*H(ro) - ri*H(ri) for kernel k, the transform integrated
// over the casing wall.
func annular(f hankel.Filter, k hankel.Kernel, outer, inner float64) (complex128, error) {
	ho, err := f.J1(k, outer)
	if err != nil {
		return 0, err
	}
	hi, err := f.J1(k, inner)
	if err != nil {
		return 0, err
	}
	return complex(outer, 0)*ho - complex(inner, 0)*hi, nil
}

/*
Diagonal element of the integrated Green's matrix

	Gii = -[ro*H(fii; ro) - ri*H(fii; ri)] / (2*sigma)

Args:
	p: casing parameters, p.Filter selects the Hankel filter
	zi: depth of the segment center, m

Returns:
	Gii in the e^(-iwt) convention the kernels are derived in
*/
func Gii(p Params, zi float64) (complex128, error) {
	v, err := annular(p.filter(), selfKernel(p, zi), p.OuterRadius, p.InnerRadius)
	if err != nil {
		return 0, err
	}
	return -v / complex(2*p.BackgroundConductivity, 0), nil
}

// Gij is the off-diagonal counterpart of Gii for segments centred at zi and zj.
func Gij(p Params, zi, zj float64) (complex128, error) {
	v, err := annular(p.filter(), mutualKernel(p, zi, zj), p.OuterRadius, p.InnerRadius)
	if err != nil {
		return 0, err
	}
	return -v / complex(2*p.BackgroundConductivity, 0), nil
}

// Zii is the diagonal of the direct coefficient matrix, 1/sigma_c - Gii,
// e^(-iwt).
func Zii(p Params, zi float64) (complex128, error) {
	g, err := Gii(p, zi)
	if err != nil {
		return 0, err
	}
	return complex(1/p.CasingConductivity, 0) - g, nil
}

// Zij is the off-diagonal of the direct coefficient matrix, -Gij, e^(-iwt).
func Zij(p Params, zi, zj float64) (complex128, error) {
	g, err := Gij(p, zi, zj)
	if err != nil {
		return 0, err
	}
	return -g, nil
}

/*
Diagonal element of the legacy coefficient matrix, built without a separate
Green's matrix

	Aii = 1/sigma_c + [ro*H(fii; ro) - ri*H(fii; ri)] / (2*sigma)

The whole matrix stays in the e^(-iwt) convention; no conjugation is applied.
*/
func AiiOld(p Params, zi float64) (complex128, error) {
	v, err := annular(p.filter(), selfKernel(p, zi), p.OuterRadius, p.InnerRadius)
	if err != nil {
		return 0, err
	}
	return complex(1/p.CasingConductivity, 0) + v/complex(2*p.BackgroundConductivity, 0), nil
}

// AijOld is the off-diagonal legacy element, [ro*H(fij; ro) - ri*H(fij; ri)]/(2*sigma).
// There is no self term.
func AijOld(p Params, zi, zj float64) (complex128, error) {
	v, err := annular(p.filter(), mutualKernel(p, zi, zj), p.OuterRadius, p.InnerRadius)
	if err != nil {
		return 0, err
	}
	return v / complex(2*p.BackgroundConductivity, 0), nil
}
