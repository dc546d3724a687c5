package halfspace

import (
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/integrate/quad"
)

// Tolerances of the adaptive quadrature.
type quadrature struct {
	EpsAbs float64
	EpsRel float64
	Limit  int // maximum number of subintervals
}

var vebQuadrature = quadrature{EpsAbs: 1e-20, EpsRel: 1e-12, Limit: 200}

const (
	gaussLow  = 10
	gaussHigh = 21
)

type panel struct {
	a, b     float64
	integral float64
	err      float64
}

func newPanel(f func(float64) float64, a, b float64) panel {
	lo := quad.Fixed(f, a, b, gaussLow, quad.Legendre{}, 0)
	hi := quad.Fixed(f, a, b, gaussHigh, quad.Legendre{}, 0)
	return panel{a: a, b: b, integral: hi, err: math.Abs(hi - lo)}
}

/*
Globally adaptive Gauss-Legendre integration of f over [a, b]

The panel with the largest error estimate is bisected until the summed
estimate satisfies max(EpsAbs, EpsRel*|I|) or Limit panels exist. Reversed
bounds give the negated integral.

Returns:
	the integral estimate and the summed error estimate
*/
func (q quadrature) integrate(f func(float64) float64, a, b float64) (float64, float64) {
	if a == b {
		return 0, 0
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	panels := []panel{newPanel(f, a, b)}
	for {
		var total, errSum float64
		worst := 0
		for i, p := range panels {
			total += p.integral
			errSum += p.err
			if p.err > panels[worst].err {
				worst = i
			}
		}
		if errSum <= math.Max(q.EpsAbs, q.EpsRel*math.Abs(total)) {
			return sign * total, errSum
		}
		if len(panels) >= q.Limit {
			log.WithFields(log.Fields{
				"a":      a,
				"b":      b,
				"panels": len(panels),
				"error":  errSum,
			}).Warn("quadrature subdivision limit reached")
			return sign * total, errSum
		}

		p := panels[worst]
		mid := 0.5 * (p.a + p.b)
		panels[worst] = newPanel(f, p.a, mid)
		panels = append(panels, newPanel(f, mid, p.b))
	}
}

// complexQuad integrates the real and imaginary parts of f separately.
func complexQuad(f func(float64) complex128, a, b float64, q quadrature) complex128 {
	re, _ := q.integrate(func(x float64) float64 { return real(f(x)) }, a, b)
	im, _ := q.integrate(func(x float64) float64 { return imag(f(x)) }, a, b)
	return complex(re, im)
}
