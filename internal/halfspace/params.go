package halfspace

import (
	"fmt"
	"math"

	"em_casing/internal/hankel"
)

/*
Physical and discretization parameters of one casing solve.

	Frequency: Hz
	BackgroundConductivity: conductivity of the halfspace, S/m
	CasingConductivity: conductivity of the casing steel, S/m
	OuterRadius, InnerRadius: annular cross-section of the casing, m
	CasingLength: m, measured down from the wellhead
	NumSegments: number of axial segments
	WireCurrent: source wire current, A
	Filter: Hankel filter used for the matrix elements

Params is passed by value and never mutated by the builders.
*/
type Params struct {
	Frequency              float64
	BackgroundConductivity float64
	CasingConductivity     float64
	OuterRadius            float64
	InnerRadius            float64
	CasingLength           float64
	NumSegments            int
	WireCurrent            float64
	Filter                 hankel.FilterKind
}

func DefaultParams() Params {
	return Params{
		Frequency:              DefaultFrequency,
		BackgroundConductivity: DefaultBackgroundConductivity,
		CasingConductivity:     DefaultCasingConductivity,
		OuterRadius:            DefaultOuterRadius,
		InnerRadius:            DefaultInnerRadius,
		CasingLength:           DefaultCasingLength,
		NumSegments:            DefaultNumSegments,
		WireCurrent:            DefaultWireCurrent,
		Filter:                 hankel.Filter201,
	}
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidParams, name, v)
	}
	return nil
}

// Validate reports the first parameter that is out of range.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"frequency", p.Frequency},
		{"background_conductivity", p.BackgroundConductivity},
		{"casing_conductivity", p.CasingConductivity},
		{"outer_radius", p.OuterRadius},
		{"inner_radius", p.InnerRadius},
		{"casing_length", p.CasingLength},
	}
	for _, c := range checks {
		if err := positive(c.name, c.v); err != nil {
			return err
		}
	}
	if p.InnerRadius >= p.OuterRadius {
		return fmt.Errorf("%w: inner_radius %g must be less than outer_radius %g",
			ErrInvalidParams, p.InnerRadius, p.OuterRadius)
	}
	if p.NumSegments < 1 {
		return fmt.Errorf("%w: num_segments must be at least 1, got %d", ErrInvalidParams, p.NumSegments)
	}
	if math.IsNaN(p.WireCurrent) || math.IsInf(p.WireCurrent, 0) {
		return fmt.Errorf("%w: wire_current must be finite, got %g", ErrInvalidParams, p.WireCurrent)
	}
	if _, err := hankel.Lookup(p.Filter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// SegmentLength is dz = L/N.
func (p Params) SegmentLength() float64 {
	return p.CasingLength / float64(p.NumSegments)
}

// SegmentCenters returns z_k = dz*(k+0.5), k = 0..N-1.
func (p Params) SegmentCenters() []float64 {
	dz := p.SegmentLength()
	zs := make([]float64, p.NumSegments)
	for k := range zs {
		zs[k] = dz * (float64(k) + 0.5)
	}
	return zs
}

// CasingArea is the annular cross-section pi*(ro^2 - ri^2), m2.
func (p Params) CasingArea() float64 {
	return math.Pi * (p.OuterRadius*p.OuterRadius - p.InnerRadius*p.InnerRadius)
}

func (p Params) filter() hankel.Filter {
	return hankel.MustLookup(p.Filter)
}
