// Package casing couples the method-of-moments casing solution to source and
// receiver geometry: it solves for the casing currents induced by a grounded
// wire and superposes their field with the wire's own.
package casing

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"em_casing/internal/engine"
	"em_casing/internal/halfspace"
	"em_casing/internal/harmonic"
	"em_casing/internal/solver"
	"em_casing/internal/wire"
)

/*
One wire source and one vertical casing at the origin

	Params: casing, medium and discretization
	Path: source wire on the surface
	Method: excitation strategy, MethodAnalytic when empty
	Strategy: matrix strategy, StrategyGamma when empty
	Workers: concurrent rows during matrix assembly
	Symmetry: assemble the upper triangle only
	Engine: field engine for Fields, the analytic one when nil
*/
type Model struct {
	Params   halfspace.Params
	Path     wire.Path
	Method   halfspace.Method
	Strategy halfspace.Strategy
	Workers  int
	Symmetry bool
	Engine   engine.Engine
}

// Solution holds the casing unknowns, e^(+iwt).
type Solution struct {
	Depths        []float64    // segment centers, m
	Density       []complex128 // axial current density, A/m2
	Current       []complex128 // segment current, A
	Moment        []complex128 // segment dipole moment, A m
	SegmentLength float64      // m
	Area          float64      // m2
}

func (m *Model) method() halfspace.Method {
	if m.Method == "" {
		return halfspace.MethodAnalytic
	}
	return m.Method
}

func (m *Model) strategy() halfspace.Strategy {
	if m.Strategy == "" {
		return halfspace.StrategyGamma
	}
	return m.Strategy
}

func (m *Model) engine() engine.Engine {
	if m.Engine == nil {
		return engine.NewAnalytic(m.Params.Halfspace())
	}
	return m.Engine
}

func (m *Model) assembleOptions() []halfspace.AssembleOption {
	opts := []halfspace.AssembleOption{halfspace.WithWorkers(m.Workers)}
	if m.Symmetry {
		opts = append(opts, halfspace.WithSymmetry())
	}
	return opts
}

// wirePath drops zero-length segments and checks what is left.
func (m *Model) wirePath() (wire.Path, error) {
	if err := m.Path.Validate(); err != nil {
		return wire.Path{}, err
	}
	path := m.Path.Compact()
	if len(path.Nodes) < 2 {
		return wire.Path{}, fmt.Errorf("%w: all %d segments have zero length", wire.ErrNoLength, len(m.Path.Nodes)-1)
	}
	return path, nil
}

/*
Solve computes the casing current densities

	A j = b,  i = j * area,  m = i * dz

With StrategyDirect the system is solved in e^(-iwt) and converted back.

Returns:
	the solution, or the first validation, assembly or solver error
*/
func (m *Model) Solve(ctx context.Context) (*Solution, error) {
	p := m.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := m.strategy().Validate(); err != nil {
		return nil, err
	}
	path, err := m.wirePath()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	b, err := halfspace.FormB(p, path, m.method())
	if err != nil {
		return nil, fmt.Errorf("casing: forming excitation: %w", err)
	}

	var (
		j        *harmonic.Vector[harmonic.Plus]
		residual float64
	)
	switch m.strategy() {
	case halfspace.StrategyDirect:
		a, err := halfspace.FormADirect(ctx, p, m.assembleOptions()...)
		if err != nil {
			return nil, fmt.Errorf("casing: assembling matrix: %w", err)
		}
		bm := harmonic.VectorToMinus(b)
		x, r, err := solve(a, bm)
		if err != nil {
			return nil, err
		}
		j, residual = harmonic.VectorToPlus(x), r
	default:
		a, err := halfspace.FormA(ctx, p, m.assembleOptions()...)
		if err != nil {
			return nil, fmt.Errorf("casing: assembling matrix: %w", err)
		}
		if j, residual, err = solve(a, b); err != nil {
			return nil, err
		}
	}

	sol := newSolution(p, j)
	log.WithFields(log.Fields{
		"segments":      p.NumSegments,
		"filter":        p.Filter,
		"method":        m.method(),
		"strategy":      m.strategy(),
		"wire_segments": len(path.SegmentLengths()),
		"wire_length":   path.Length(),
		"residual":      residual,
		"elapsed":       time.Since(start),
	}).Info("casing currents solved")
	return sol, nil
}

func solve[C harmonic.Convention](a *harmonic.Matrix[C], b *harmonic.Vector[C]) (*harmonic.Vector[C], float64, error) {
	x, err := solver.Solve(a, b)
	if err != nil {
		return nil, 0, fmt.Errorf("casing: solving: %w", err)
	}
	return x, solver.Residual(a, x, b), nil
}

func newSolution(p halfspace.Params, j *harmonic.Vector[harmonic.Plus]) *Solution {
	dz := p.SegmentLength()
	area := p.CasingArea()
	s := &Solution{
		Depths:        p.SegmentCenters(),
		Density:       j.RawData(),
		Current:       make([]complex128, j.Len()),
		Moment:        make([]complex128, j.Len()),
		SegmentLength: dz,
		Area:          area,
	}
	for k, jk := range s.Density {
		s.Current[k] = jk * complex(area, 0)
		s.Moment[k] = s.Current[k] * complex(dz, 0)
	}
	return s
}
