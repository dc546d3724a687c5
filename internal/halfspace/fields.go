package halfspace

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Point is a location in the halfspace, m. Z is depth, positive down from
// the surface.
type Point struct {
	X, Y, Z float64
}

/*
Uniform conductive halfspace under a non-conducting air layer

	Frequency: Hz
	Conductivity: S/m

Fields are returned in the e^(+iwt) convention with k^2 = -i*omega*mu0*sigma.
*/
type Halfspace struct {
	Frequency    float64
	Conductivity float64
}

// Halfspace returns the background medium of p.
func (p Params) Halfspace() Halfspace {
	return Halfspace{Frequency: p.Frequency, Conductivity: p.BackgroundConductivity}
}

func (h Halfspace) kSquared() complex128 {
	return kSquared(h.Frequency, h.Conductivity)
}

/*
z component of the electric field of a horizontal electric dipole at the surface

Args:
	obs: observation point
	src: dipole location, src.Z is ignored (the dipole lies on the surface)
	angle: dipole direction, rad from the x axis
	moment: dipole moment, A m

Hohmann and Ward; Bannister and Dube (1978) eq. 36.
*/
func (h Halfspace) HEDEz(obs, src Point, angle, moment float64) (complex128, error) {
	dx := obs.X - src.X
	dy := obs.Y - src.Y
	r2 := dx*dx + dy*dy + obs.Z*obs.Z
	if r2 == 0 {
		return 0, fmt.Errorf("%w: observation point %v on the dipole", ErrBadGeometry, obs)
	}
	kr2 := h.kSquared() * complex(r2, 0)
	ikr := 1i * cmplx.Sqrt(kr2)
	r := math.Sqrt(r2)

	ez := cmplx.Exp(-ikr) * complex(obs.Z/math.Pow(r, 5), 0)
	ez *= complex(dx*math.Cos(angle)+dy*math.Sin(angle), 0)
	ez *= 3 + 3*ikr - kr2
	ez *= complex(moment/2/math.Pi/h.Conductivity, 0)
	return ez, nil
}

/*
z component of the electric field of a horizontal electric bipole at the surface

Args:
	obs: observation point
	a, b: grounding points of the bipole, current flows from a to b
	current: A

Only the grounding points enter; the shape of the wire between them does not
change Ez in a halfspace. Hohmann and Ward; Wait (1951).
*/
func (h Halfspace) HEBEz(obs, a, b Point, current float64) (complex128, error) {
	k := cmplx.Sqrt(h.kSquared())
	distance := func(end Point) float64 {
		dx := obs.X - end.X
		dy := obs.Y - end.Y
		return math.Sqrt(dx*dx + dy*dy + obs.Z*obs.Z)
	}
	term := func(r float64) complex128 {
		ikr := 1i * k * complex(r, 0)
		return cmplx.Exp(-ikr) / complex(r*r*r, 0) * (1 + ikr)
	}

	ra, rb := distance(a), distance(b)
	if ra == 0 || rb == 0 {
		return 0, fmt.Errorf("%w: observation point %v on a grounding point", ErrBadGeometry, obs)
	}
	ez := term(rb) - term(ra)
	ez *= complex(current*obs.Z/2/math.Pi/h.Conductivity, 0)
	return ez, nil
}

/*
z component of the electric field of a vertical electric dipole below the surface

Args:
	obs: observation point
	src: dipole location, src.Z is the dipole depth
	moment: A m

The halfspace response is the wholespace field of the dipole minus the
wholespace field of its image at -src.Z.
*/
func (h Halfspace) VEDEz(obs, src Point, moment float64) (complex128, error) {
	dx := obs.X - src.X
	dy := obs.Y - src.Y
	rho := math.Sqrt(dx*dx + dy*dy)
	if rho == 0 && (obs.Z == src.Z || obs.Z == -src.Z) {
		return 0, fmt.Errorf("%w: observation point %v on the dipole or its image", ErrBadGeometry, obs)
	}
	return complex(moment, 0) * vedEz(src.Z, obs.Z, rho, h.kSquared(), h.Conductivity), nil
}

func vedEz(zp, z, rho float64, k2 complex128, conductivity float64) complex128 {
	direct := vedEzWholespace(rho, z-zp, k2, conductivity)
	image := vedEzWholespace(rho, z+zp, k2, conductivity)
	return direct - image
}

// vedEzWholespace is the unit-moment vertical dipole field in a wholespace at
// horizontal offset rho and vertical offset dz.
func vedEzWholespace(rho, dz float64, k2 complex128, conductivity float64) complex128 {
	r2 := rho*rho + dz*dz
	kr2 := k2 * complex(r2, 0)
	ikr := 1i * cmplx.Sqrt(kr2)
	r := math.Sqrt(r2)

	ez := kr2 - ikr - 1
	ez += complex(dz*dz/r2, 0) * (-kr2 + 3*ikr + 3)
	ez *= cmplx.Exp(-ikr) / complex(r*r*r, 0)
	ez *= complex(1/(4*math.Pi*conductivity), 0)
	return ez
}

/*
z component of the electric field of a vertical electric bipole

Args:
	obs: observation point
	x, y: horizontal location of the bipole
	zp1, zp2: depths of the bipole ends, current flows from zp1 to zp2
	current: A

The unit dipole field is integrated over depth with adaptive Gauss-Legendre
quadrature, real and imaginary parts independently (Wait, 1952 gives the
closed form in generalized sine and cosine integrals).
*/
func (h Halfspace) VEBEz(obs Point, x, y, zp1, zp2, current float64) (complex128, error) {
	dx := obs.X - x
	dy := obs.Y - y
	rho := math.Sqrt(dx*dx + dy*dy)
	lo, hi := math.Min(zp1, zp2), math.Max(zp1, zp2)
	if rho == 0 && ((obs.Z >= lo && obs.Z <= hi) || (-obs.Z >= lo && -obs.Z <= hi)) {
		return 0, fmt.Errorf("%w: observation depth %g lies on the bipole [%g, %g]", ErrBadGeometry, obs.Z, zp1, zp2)
	}

	k2 := h.kSquared()
	f := func(zp float64) complex128 {
		return vedEz(zp, obs.Z, rho, k2, h.Conductivity)
	}
	ez := complexQuad(f, zp1, zp2, vebQuadrature)
	return complex(current, 0) * ez, nil
}
