// Package engine defines the electromagnetic reference engine the casing
// model evaluates primary fields and point-dipole responses with.
package engine

import (
	"errors"
	"fmt"

	"em_casing/internal/halfspace"
	"em_casing/internal/hankel"
)

var (
	ErrUnsupportedGeometry  = errors.New("engine: source geometry not supported")
	ErrUnsupportedComponent = errors.New("engine: field component not supported")
	ErrUnknownEngine        = errors.New("engine: engine not recognized")
)

// Engine names accepted by New.
const (
	NameAnalytic = "analytic"
	NameHankel   = "hankel"
)

// New returns the engine called name for medium h. The Hankel engine uses
// the 201-point filter, the only built-in one with J0 weights.
func New(name string, h halfspace.Halfspace) (Engine, error) {
	switch name {
	case "", NameAnalytic:
		return NewAnalytic(h), nil
	case NameHankel:
		return NewHankel(h, hankel.Filter201)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// Names lists the engines New knows.
func Names() []string {
	return []string{NameAnalytic, NameHankel}
}

// Component selects a Cartesian electric field component.
type Component string

const (
	ComponentEx Component = "ex"
	ComponentEy Component = "ey"
	ComponentEz Component = "ez"
)

// Bipole is a finite straight electric source from A to B carrying Current, A.
type Bipole struct {
	A, B    halfspace.Point
	Current float64
}

// Dipole is an infinitesimal electric source.
type Dipole struct {
	Pos      halfspace.Point
	Vertical bool    // points down when true
	Azimuth  float64 // rad from the x axis, horizontal dipoles only
	Moment   float64 // A m
}

// Engine evaluates fields in a halfspace, e^(+iwt).
type Engine interface {
	Bipole(src Bipole, rec halfspace.Point, c Component) (complex128, error)
	Dipole(src Dipole, rec halfspace.Point, c Component) (complex128, error)
	Filter(name string) (hankel.Filter, error)
}

// Analytic is an Engine built on the closed-form halfspace formulas. It
// covers surface horizontal and buried vertical sources, Ez only.
type Analytic struct {
	Medium halfspace.Halfspace
}

func NewAnalytic(h halfspace.Halfspace) *Analytic {
	return &Analytic{Medium: h}
}

func checkComponent(c Component) error {
	if c != ComponentEz {
		return fmt.Errorf("%w: %q", ErrUnsupportedComponent, string(c))
	}
	return nil
}

func (e *Analytic) Bipole(src Bipole, rec halfspace.Point, c Component) (complex128, error) {
	if err := checkComponent(c); err != nil {
		return 0, err
	}
	switch {
	case src.A.Z == 0 && src.B.Z == 0:
		return e.Medium.HEBEz(rec, src.A, src.B, src.Current)
	case src.A.X == src.B.X && src.A.Y == src.B.Y:
		return e.Medium.VEBEz(rec, src.A.X, src.A.Y, src.A.Z, src.B.Z, src.Current)
	default:
		return 0, fmt.Errorf("%w: bipole %v to %v is neither on the surface nor vertical",
			ErrUnsupportedGeometry, src.A, src.B)
	}
}

func (e *Analytic) Dipole(src Dipole, rec halfspace.Point, c Component) (complex128, error) {
	if err := checkComponent(c); err != nil {
		return 0, err
	}
	switch {
	case src.Vertical:
		return e.Medium.VEDEz(rec, src.Pos, src.Moment)
	case src.Pos.Z == 0:
		return e.Medium.HEDEz(rec, src.Pos, src.Azimuth, src.Moment)
	default:
		return 0, fmt.Errorf("%w: horizontal dipole at depth %g", ErrUnsupportedGeometry, src.Pos.Z)
	}
}

func (e *Analytic) Filter(name string) (hankel.Filter, error) {
	return hankel.Lookup(hankel.FilterKind(name))
}
