package halfspace

import (
	"math/cmplx"

	"em_casing/internal/hankel"
)

// radialWavenumber is s = sqrt(lambda^2 - i*omega*mu0*sigma) on the principal
// branch, Re(s) >= 0. math/cmplx.Sqrt returns exactly that branch.
func radialWavenumber(lambda float64, k2 complex128) complex128 {
	return cmplx.Sqrt(complex(lambda*lambda, 0) + k2)
}

/*
Integrand of the self-coupling element of a casing segment

	fii = lambda^2/s^2 * [2e^(-s dz/2) - 2 - e^(-s(2z+dz/2)) + e^(-s(2z-dz/2))]

Args:
	lambda: transform variables, 1/m
	z: depth of the segment center, m
	dz: segment length, m
	frequency: Hz
	conductivity: background conductivity, S/m
*/
func Fii(lambda []float64, z, dz, frequency, conductivity float64) []complex128 {
	k2 := kSquared(frequency, conductivity)
	half := complex(dz/2, 0)
	deep := complex(2*z+dz/2, 0)
	shallow := complex(2*z-dz/2, 0)

	out := make([]complex128, len(lambda))
	for n, l := range lambda {
		s := radialWavenumber(l, k2)
		v := 2 * cmplx.Exp(-s*half)
		v -= 2
		v -= cmplx.Exp(-s * deep)
		v += cmplx.Exp(-s * shallow)
		out[n] = v * complex(l*l, 0) / (s * s)
	}
	return out
}

/*
Integrand of the mutual-coupling element between two segments

	fij = lambda^2/s^2 * [e^(-s(|zi-zj|+dz/2)) - e^(-s(|zi-zj|-dz/2))
	                      - e^(-s(zi+zj+dz/2)) + e^(-s(zi+zj-dz/2))]

The zi+zj terms are the image across the halfspace surface.
*/
func Fij(lambda []float64, zi, zj, dz, frequency, conductivity float64) []complex128 {
	k2 := kSquared(frequency, conductivity)
	sep := zi - zj
	if sep < 0 {
		sep = -sep
	}
	sum := zi + zj
	a := complex(sep+dz/2, 0)
	b := complex(sep-dz/2, 0)
	c := complex(sum+dz/2, 0)
	d := complex(sum-dz/2, 0)

	out := make([]complex128, len(lambda))
	for n, l := range lambda {
		s := radialWavenumber(l, k2)
		v := cmplx.Exp(-s * a)
		v -= cmplx.Exp(-s * b)
		v -= cmplx.Exp(-s * c)
		v += cmplx.Exp(-s * d)
		out[n] = v * complex(l*l, 0) / (s * s)
	}
	return out
}

func selfKernel(p Params, z float64) hankel.Kernel {
	dz := p.SegmentLength()
	return func(lambda []float64) []complex128 {
		return Fii(lambda, z, dz, p.Frequency, p.BackgroundConductivity)
	}
}

func mutualKernel(p Params, zi, zj float64) hankel.Kernel {
	dz := p.SegmentLength()
	return func(lambda []float64) []complex128 {
		return Fij(lambda, zi, zj, dz, p.Frequency, p.BackgroundConductivity)
	}
}
