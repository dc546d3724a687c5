package engine

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"em_casing/internal/halfspace"
	"em_casing/internal/hankel"
)

var medium = halfspace.Halfspace{Frequency: 0.125, Conductivity: 0.18}

func TestAnalyticBipoleDispatch(t *testing.T) {
	e := NewAnalytic(medium)
	rec := halfspace.Point{X: 3, Z: 50}

	surface := Bipole{A: halfspace.Point{X: -100}, B: halfspace.Point{X: 100}, Current: 1}
	got, err := e.Bipole(surface, rec, ComponentEz)
	require.NoError(t, err)
	want, err := medium.HEBEz(rec, surface.A, surface.B, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	vertical := Bipole{A: halfspace.Point{Z: 100}, B: halfspace.Point{Z: 110}, Current: 1}
	got, err = e.Bipole(vertical, rec, ComponentEz)
	require.NoError(t, err)
	want, err = medium.VEBEz(rec, 0, 0, 100, 110, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	slanted := Bipole{A: halfspace.Point{Z: 100}, B: halfspace.Point{X: 5, Z: 110}}
	_, err = e.Bipole(slanted, rec, ComponentEz)
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)
}

func TestAnalyticDipoleDispatch(t *testing.T) {
	e := NewAnalytic(medium)
	rec := halfspace.Point{X: 1, Z: 100}

	got, err := e.Dipole(Dipole{Moment: 2}, rec, ComponentEz)
	require.NoError(t, err)
	want, err := medium.HEDEz(rec, halfspace.Point{}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	src := Dipole{Pos: halfspace.Point{Z: 400}, Vertical: true, Moment: 5}
	got, err = e.Dipole(src, rec, ComponentEz)
	require.NoError(t, err)
	want, err = medium.VEDEz(rec, src.Pos, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = e.Dipole(Dipole{Pos: halfspace.Point{Z: 10}}, rec, ComponentEz)
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)
}

func TestAnalyticComponents(t *testing.T) {
	e := NewAnalytic(medium)
	for _, c := range []Component{ComponentEx, ComponentEy, "hz"} {
		_, err := e.Dipole(Dipole{Moment: 1}, halfspace.Point{Z: 1}, c)
		assert.ErrorIs(t, err, ErrUnsupportedComponent)
		_, err = e.Bipole(Bipole{B: halfspace.Point{X: 1}}, halfspace.Point{Z: 1}, c)
		assert.ErrorIs(t, err, ErrUnsupportedComponent)
	}
}

func TestAnalyticReportsSingularReceivers(t *testing.T) {
	e := NewAnalytic(medium)
	wire := Bipole{A: halfspace.Point{X: 10}, B: halfspace.Point{X: 1000}, Current: 1}
	_, err := e.Bipole(wire, halfspace.Point{X: 10}, ComponentEz)
	assert.ErrorIs(t, err, halfspace.ErrBadGeometry)

	seg := Dipole{Pos: halfspace.Point{Z: 12.5}, Vertical: true, Moment: 1}
	_, err = e.Dipole(seg, halfspace.Point{Z: 12.5}, ComponentEz)
	assert.ErrorIs(t, err, halfspace.ErrBadGeometry)

	_, err = e.Dipole(Dipole{Moment: 1}, halfspace.Point{}, ComponentEz)
	assert.ErrorIs(t, err, halfspace.ErrBadGeometry)
}

func TestNew(t *testing.T) {
	for _, name := range append(Names(), "") {
		e, err := New(name, medium)
		require.NoError(t, err, name)
		assert.NotNil(t, e)
	}
	e, err := New(NameHankel, medium)
	require.NoError(t, err)
	assert.IsType(t, &Hankel{}, e)

	_, err = New("fdtd", medium)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestAnalyticFilterLookup(t *testing.T) {
	e := NewAnalytic(medium)
	f, err := e.Filter("201")
	require.NoError(t, err)
	assert.Equal(t, hankel.Filter201, f.Kind())
	_, err = e.Filter("key_101")
	assert.ErrorIs(t, err, hankel.ErrUnknownFilter)
}

// The engine's point dipole and finite bipole agree for a short source, and
// both reproduce the casing mutual element between distant segments.
func TestEngineReproducesMutualElement(t *testing.T) {
	p := halfspace.DefaultParams()
	p.CasingLength = 1500
	p.NumSegments = 300
	p.InnerRadius = 0.0961
	e := NewAnalytic(p.Halfspace())

	dz := p.SegmentLength()
	area := p.CasingArea()
	rec := halfspace.Point{Z: 52.5}

	gij, err := halfspace.Gij(p, 52.5, 1352.5)
	require.NoError(t, err)
	gamma := cmplx.Conj(gij)

	dip, err := e.Dipole(Dipole{Pos: halfspace.Point{Z: 1352.5}, Vertical: true, Moment: dz * area}, rec, ComponentEz)
	require.NoError(t, err)
	bip, err := e.Bipole(Bipole{A: halfspace.Point{Z: 1350}, B: halfspace.Point{Z: 1355}, Current: area}, rec, ComponentEz)
	require.NoError(t, err)

	assert.LessOrEqual(t, cmplx.Abs(dip-gamma), 1e-4*cmplx.Abs(gamma))
	assert.LessOrEqual(t, cmplx.Abs(bip-gamma), 1e-4*cmplx.Abs(gamma))
	assert.LessOrEqual(t, cmplx.Abs(bip-dip), 1e-3*cmplx.Abs(bip))
}
