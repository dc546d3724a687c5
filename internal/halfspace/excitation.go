package halfspace

import (
	"fmt"

	"em_casing/internal/harmonic"
	"em_casing/internal/wire"
)

// Method names an excitation strategy.
type Method string

const (
	// MethodAnalytic evaluates the bipole formula between the wire's
	// grounding points.
	MethodAnalytic Method = "analytic"
	// MethodSegmented sums the bipole formula over every wire segment.
	MethodSegmented Method = "segmented"
)

// Excitation computes the axial electric field at every segment center.
type Excitation interface {
	Excite(p Params, path wire.Path) (*harmonic.Vector[harmonic.Plus], error)
}

// Excitation returns the strategy m names.
func (m Method) Excitation() (Excitation, error) {
	switch m {
	case MethodAnalytic:
		return analyticExcitation{}, nil
	case MethodSegmented:
		return segmentedExcitation{}, nil
	default:
		return nil, fmt.Errorf("%w: method %q", ErrUnknownMethod, string(m))
	}
}

// Methods lists the known strategies.
func Methods() []Method {
	return []Method{MethodAnalytic, MethodSegmented}
}

/*
Right hand side of the casing system

Args:
	p: casing parameters
	path: source wire, current p.WireCurrent
	method: excitation strategy

Returns:
	b_k = Ez at (0, 0, z_k), e^(+iwt)
*/
func FormB(p Params, path wire.Path, method Method) (*harmonic.Vector[harmonic.Plus], error) {
	exc, err := method.Excitation()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := path.Validate(); err != nil {
		return nil, err
	}
	if len(path.Compact().Nodes) < 2 {
		return nil, fmt.Errorf("%w: %d nodes", wire.ErrNoLength, len(path.Nodes))
	}
	return exc.Excite(p, path)
}

func surface(n wire.Node) Point {
	return Point{X: n.X, Y: n.Y}
}

type analyticExcitation struct{}

// Only the grounding points enter the surface bipole Ez.
func (analyticExcitation) Excite(p Params, path wire.Path) (*harmonic.Vector[harmonic.Plus], error) {
	h := p.Halfspace()
	a, b := surface(path.First()), surface(path.Last())
	zs := p.SegmentCenters()
	ez := make([]complex128, len(zs))
	for k, z := range zs {
		var err error
		if ez[k], err = h.HEBEz(Point{Z: z}, a, b, p.WireCurrent); err != nil {
			return nil, err
		}
	}
	return harmonic.VectorFrom[harmonic.Plus](ez), nil
}

type segmentedExcitation struct{}

func (segmentedExcitation) Excite(p Params, path wire.Path) (*harmonic.Vector[harmonic.Plus], error) {
	segs := path.Compact().Segments()
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %d nodes", wire.ErrNoLength, len(path.Nodes))
	}
	h := p.Halfspace()
	zs := p.SegmentCenters()
	v := harmonic.NewVector[harmonic.Plus](len(zs))
	for k, z := range zs {
		obs := Point{Z: z}
		var ez complex128
		for _, s := range segs {
			e, err := h.HEBEz(obs, surface(s.A), surface(s.B), p.WireCurrent)
			if err != nil {
				return nil, err
			}
			ez += e
		}
		v.Set(k, ez)
	}
	return v, nil
}
