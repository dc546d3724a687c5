package engine

import (
	"fmt"
	"math"
	"math/cmplx"

	"em_casing/internal/halfspace"
	"em_casing/internal/hankel"
)

/*
Hankel is an Engine that evaluates the wavenumber integrals of the halfspace
responses with a digital linear filter instead of their closed forms.

	u = sqrt(lambda^2 + g^2),  g^2 = i*omega*mu0*sigma

	surface bipole   Ez = I/(2 pi sigma) [T(rho_b) - T(rho_a)],
	                 T(rho) = int lambda e^(-u z) J0(lambda rho) dlambda
	surface dipole   Ez = m/(2 pi sigma) cos(phi) int lambda^2 e^(-u z) J1(lambda rho) dlambda
	vertical dipole  Ez = m/(4 pi sigma) int lambda^3/u [e^(-u|z-z'|) - e^(-u(z+z'))] J0(lambda rho) dlambda

The vertical bipole integrates the dipole kernel over z' in closed form.
Receivers must lie below the surface, off the axis of vertical sources and
outside their depth range. Ez only.
*/
type Hankel struct {
	Medium halfspace.Halfspace
	filter hankel.Filter
	g2     complex128
}

// NewHankel returns a Hankel engine on the filter kind names. The filter
// needs J0 weights.
func NewHankel(h halfspace.Halfspace, kind hankel.FilterKind) (*Hankel, error) {
	f, err := hankel.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if !f.HasJ0() {
		return nil, fmt.Errorf("%w: filter %s, order 0", hankel.ErrNoWeights, kind)
	}
	return &Hankel{
		Medium: h,
		filter: f,
		g2:     complex(0, 2*math.Pi*h.Frequency*halfspace.Mu0*h.Conductivity),
	}, nil
}

func (e *Hankel) u(lambda float64) complex128 {
	return cmplx.Sqrt(complex(lambda*lambda, 0) + e.g2)
}

func horizontal(a, b halfspace.Point) (dx, dy, rho float64) {
	dx, dy = a.X-b.X, a.Y-b.Y
	return dx, dy, math.Hypot(dx, dy)
}

func (e *Hankel) belowSurface(rec halfspace.Point) error {
	if !(rec.Z > 0) {
		return fmt.Errorf("%w: receiver at depth %g, the filter needs z > 0", ErrUnsupportedGeometry, rec.Z)
	}
	return nil
}

func (e *Hankel) Bipole(src Bipole, rec halfspace.Point, c Component) (complex128, error) {
	if err := checkComponent(c); err != nil {
		return 0, err
	}
	switch {
	case src.A.Z == 0 && src.B.Z == 0:
		return e.surfaceBipole(src, rec)
	case src.A.X == src.B.X && src.A.Y == src.B.Y:
		return e.verticalBipole(src, rec)
	default:
		return 0, fmt.Errorf("%w: bipole %v to %v is neither on the surface nor vertical",
			ErrUnsupportedGeometry, src.A, src.B)
	}
}

func (e *Hankel) surfaceBipole(src Bipole, rec halfspace.Point) (complex128, error) {
	if rec == (halfspace.Point{X: src.A.X, Y: src.A.Y}) || rec == (halfspace.Point{X: src.B.X, Y: src.B.Y}) {
		return 0, fmt.Errorf("%w: observation point %v on a grounding point", halfspace.ErrBadGeometry, rec)
	}
	if err := e.belowSurface(rec); err != nil {
		return 0, err
	}
	kernel := func(lambda []float64) []complex128 {
		out := make([]complex128, len(lambda))
		for n, l := range lambda {
			out[n] = complex(l, 0) * cmplx.Exp(-e.u(l)*complex(rec.Z, 0))
		}
		return out
	}
	var ends [2]complex128
	for i, end := range []halfspace.Point{src.A, src.B} {
		_, _, rho := horizontal(rec, end)
		t, err := e.filter.J0(kernel, rho)
		if err != nil {
			return 0, fmt.Errorf("%w: receiver below grounding point %v: %v", ErrUnsupportedGeometry, end, err)
		}
		ends[i] = t
	}
	return (ends[1] - ends[0]) * complex(src.Current/2/math.Pi/e.Medium.Conductivity, 0), nil
}

func (e *Hankel) verticalBipole(src Bipole, rec halfspace.Point) (complex128, error) {
	lo, hi := math.Min(src.A.Z, src.B.Z), math.Max(src.A.Z, src.B.Z)
	if lo == hi {
		return 0, nil
	}
	if err := e.belowSurface(rec); err != nil {
		return 0, err
	}
	if lo < 0 {
		return 0, fmt.Errorf("%w: bipole above the surface", ErrUnsupportedGeometry)
	}
	if rec.Z >= lo && rec.Z <= hi {
		return 0, fmt.Errorf("%w: receiver depth %g within the bipole [%g, %g]", ErrUnsupportedGeometry, rec.Z, lo, hi)
	}
	_, _, rho := horizontal(rec, src.A)
	z := rec.Z

	// int_lo^hi of the direct and image exponentials over z'
	kernel := func(lambda []float64) []complex128 {
		out := make([]complex128, len(lambda))
		for n, l := range lambda {
			u := e.u(l)
			decay := func(d float64) complex128 { return cmplx.Exp(-u * complex(d, 0)) }
			var direct complex128
			if z < lo {
				direct = (decay(lo-z) - decay(hi-z)) / u
			} else {
				direct = (decay(z-hi) - decay(z-lo)) / u
			}
			image := (decay(z+lo) - decay(z+hi)) / u
			out[n] = complex(l*l*l, 0) / u * (direct - image)
		}
		return out
	}
	ez, err := e.filter.J0(kernel, rho)
	if err != nil {
		return 0, fmt.Errorf("%w: receiver on the bipole axis: %v", ErrUnsupportedGeometry, err)
	}
	current := src.Current
	if src.A.Z > src.B.Z {
		current = -current
	}
	return ez * complex(current/4/math.Pi/e.Medium.Conductivity, 0), nil
}

func (e *Hankel) Dipole(src Dipole, rec halfspace.Point, c Component) (complex128, error) {
	if err := checkComponent(c); err != nil {
		return 0, err
	}
	switch {
	case src.Vertical:
		return e.verticalDipole(src, rec)
	case src.Pos.Z == 0:
		return e.surfaceDipole(src, rec)
	default:
		return 0, fmt.Errorf("%w: horizontal dipole at depth %g", ErrUnsupportedGeometry, src.Pos.Z)
	}
}

func (e *Hankel) surfaceDipole(src Dipole, rec halfspace.Point) (complex128, error) {
	if err := e.belowSurface(rec); err != nil {
		return 0, err
	}
	dx, dy, rho := horizontal(rec, src.Pos)
	if rho == 0 {
		return 0, nil
	}
	kernel := func(lambda []float64) []complex128 {
		out := make([]complex128, len(lambda))
		for n, l := range lambda {
			out[n] = complex(l*l, 0) * cmplx.Exp(-e.u(l)*complex(rec.Z, 0))
		}
		return out
	}
	ez, err := e.filter.J1(kernel, rho)
	if err != nil {
		return 0, err
	}
	cos := (dx*math.Cos(src.Azimuth) + dy*math.Sin(src.Azimuth)) / rho
	return ez * complex(cos*src.Moment/2/math.Pi/e.Medium.Conductivity, 0), nil
}

func (e *Hankel) verticalDipole(src Dipole, rec halfspace.Point) (complex128, error) {
	if err := e.belowSurface(rec); err != nil {
		return 0, err
	}
	zp := src.Pos.Z
	if zp < 0 {
		return 0, fmt.Errorf("%w: dipole above the surface", ErrUnsupportedGeometry)
	}
	if rec.Z == zp {
		return 0, fmt.Errorf("%w: receiver at the dipole depth %g", ErrUnsupportedGeometry, zp)
	}
	_, _, rho := horizontal(rec, src.Pos)
	direct, image := math.Abs(rec.Z-zp), rec.Z+zp
	kernel := func(lambda []float64) []complex128 {
		out := make([]complex128, len(lambda))
		for n, l := range lambda {
			u := e.u(l)
			out[n] = complex(l*l*l, 0) / u * (cmplx.Exp(-u*complex(direct, 0)) - cmplx.Exp(-u*complex(image, 0)))
		}
		return out
	}
	ez, err := e.filter.J0(kernel, rho)
	if err != nil {
		return 0, fmt.Errorf("%w: receiver on the dipole axis: %v", ErrUnsupportedGeometry, err)
	}
	return ez * complex(src.Moment/4/math.Pi/e.Medium.Conductivity, 0), nil
}

func (e *Hankel) Filter(name string) (hankel.Filter, error) {
	return hankel.Lookup(hankel.FilterKind(name))
}
