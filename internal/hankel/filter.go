package hankel

import (
	"fmt"
	"math"
)

// FilterKind names a built-in digital linear filter.
type FilterKind string

const (
	// Filter140 is the 140-point J1 filter of Guptasarma and Singh (1997).
	Filter140 FilterKind = "140"
	// Filter201 is an in-house 201-point J0/J1 filter fitted to closed-form
	// transform pairs. It is not the Key (2012) 201-point table; replace
	// dlf201Table with the published values when they are available.
	Filter201 FilterKind = "201"
)

const (
	gs140A = -7.91001919000
	gs140S = 0.0879671439570
)

/*
Digital linear filter for Hankel transforms.

	base: abscissa scale factors b_n, lambda_n = b_n / r
	j0:   weights for the order-0 transform, nil when the filter has none
	j1:   weights for the order-1 transform

Filters are built once at package init and never written afterwards, so a
Filter value can be shared between goroutines.
*/
type Filter struct {
	kind FilterKind
	base []float64
	j0   []float64
	j1   []float64
}

var (
	filter140 = newFilter140()
	filter201 = newFilter201()
)

func newFilter140() Filter {
	f := Filter{
		kind: Filter140,
		base: make([]float64, len(gs140Weights)),
		j1:   make([]float64, len(gs140Weights)),
	}
	for n := range gs140Weights {
		f.base[n] = math.Pow(10, gs140A+float64(n)*gs140S)
		f.j1[n] = gs140Weights[n]
	}
	return f
}

func newFilter201() Filter {
	n := len(dlf201Table)
	f := Filter{
		kind: Filter201,
		base: make([]float64, n),
		j0:   make([]float64, n),
		j1:   make([]float64, n),
	}
	for i, row := range dlf201Table {
		f.base[i], f.j0[i], f.j1[i] = row[0], row[1], row[2]
	}
	return f
}

// Lookup returns the named filter.
func Lookup(kind FilterKind) (Filter, error) {
	switch kind {
	case Filter140:
		return filter140, nil
	case Filter201:
		return filter201, nil
	default:
		return Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, string(kind))
	}
}

// MustLookup is Lookup for the built-in kinds; it panics on anything else.
func MustLookup(kind FilterKind) Filter {
	f, err := Lookup(kind)
	if err != nil {
		panic(err)
	}
	return f
}

// Kinds lists the built-in filters.
func Kinds() []FilterKind {
	return []FilterKind{Filter140, Filter201}
}

func (f Filter) Kind() FilterKind { return f.kind }

func (f Filter) Len() int { return len(f.base) }

func (f Filter) HasJ0() bool { return f.j0 != nil }

// Base returns a copy of the abscissa scale factors.
func (f Filter) Base() []float64 { return append([]float64(nil), f.base...) }

// J0Weights returns a copy of the order-0 weights, or nil.
func (f Filter) J0Weights() []float64 {
	if f.j0 == nil {
		return nil
	}
	return append([]float64(nil), f.j0...)
}

// J1Weights returns a copy of the order-1 weights.
func (f Filter) J1Weights() []float64 { return append([]float64(nil), f.j1...) }
