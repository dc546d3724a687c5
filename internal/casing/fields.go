package casing

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"em_casing/internal/engine"
	"em_casing/internal/halfspace"
)

// Fields are one field component at each receiver, e^(+iwt).
type Fields struct {
	Receivers []halfspace.Point
	Component engine.Component
	Wire      []complex128 // primary field of the wire alone
	Casing    []complex128 // secondary field of the casing currents
	Total     []complex128
}

/*
Fields superposes the wire's primary field and the casing's secondary field

The wire contributes one bipole per non-zero segment carrying the wire
current; the casing contributes one vertical dipole per segment with the
moment from sol.

Args:
	ctx: checked between receivers
	sol: result of Solve for the same model
	receivers: observation points
	c: field component
*/
func (m *Model) Fields(ctx context.Context, sol *Solution, receivers []halfspace.Point, c engine.Component) (*Fields, error) {
	path, err := m.wirePath()
	if err != nil {
		return nil, err
	}
	if len(sol.Moment) != len(sol.Depths) {
		return nil, fmt.Errorf("casing: solution has %d moments for %d segments", len(sol.Moment), len(sol.Depths))
	}
	eng := m.engine()
	segs := path.Segments()

	f := &Fields{
		Receivers: append([]halfspace.Point(nil), receivers...),
		Component: c,
		Wire:      make([]complex128, len(receivers)),
		Casing:    make([]complex128, len(receivers)),
		Total:     make([]complex128, len(receivers)),
	}
	for r, rec := range receivers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, s := range segs {
			src := engine.Bipole{
				A:       halfspace.Point{X: s.A.X, Y: s.A.Y},
				B:       halfspace.Point{X: s.B.X, Y: s.B.Y},
				Current: m.Params.WireCurrent,
			}
			v, err := eng.Bipole(src, rec, c)
			if err != nil {
				return nil, fmt.Errorf("casing: wire field at receiver %d: %w", r, err)
			}
			f.Wire[r] += v
		}
		for k, z := range sol.Depths {
			src := engine.Dipole{Pos: halfspace.Point{Z: z}, Vertical: true, Moment: 1}
			v, err := eng.Dipole(src, rec, c)
			if err != nil {
				return nil, fmt.Errorf("casing: casing field at receiver %d: %w", r, err)
			}
			f.Casing[r] += sol.Moment[k] * v
		}
		f.Total[r] = f.Wire[r] + f.Casing[r]
	}

	log.WithFields(log.Fields{
		"receivers": len(receivers),
		"component": c,
		"segments":  len(sol.Depths),
	}).Debug("fields superposed")
	return f, nil
}
