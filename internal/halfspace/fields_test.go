package halfspace

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMedium = Halfspace{Frequency: testFreq, Conductivity: testCon}

func field(t *testing.T) func(complex128, error) complex128 {
	return func(v complex128, err error) complex128 {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

// A short surface bipole approaches the dipole of the same moment.
func TestHEDMatchesShortBipole(t *testing.T) {
	obs := Point{X: 1, Y: 0, Z: 100}
	const d = 1e-3

	hed := field(t)(testMedium.HEDEz(obs, Point{}, 0, d))
	heb := field(t)(testMedium.HEBEz(obs, Point{X: -d / 2}, Point{X: d / 2}, 1))
	relClose(t, hed, heb, 1e-6)

	// along y the x offset does not couple
	assert.InDelta(t, 0, real(field(t)(testMedium.HEDEz(obs, Point{}, math.Pi/2, 1))), 1e-20)
}

func TestHEDRotation(t *testing.T) {
	obs := Point{X: 30, Y: 40, Z: 80}
	x := field(t)(testMedium.HEDEz(obs, Point{}, 0, 1))
	y := field(t)(testMedium.HEDEz(obs, Point{}, math.Pi/2, 1))
	diag := field(t)(testMedium.HEDEz(obs, Point{}, math.Pi/4, 1))
	relClose(t, (x+y)/complex(math.Sqrt2, 0), diag, 1e-12)
}

func TestHEBSuperposes(t *testing.T) {
	obs := Point{Z: 250}
	a := Point{X: -800, Y: 10}
	b := Point{X: 120, Y: -300}
	c := Point{X: 900, Y: 40}
	whole := field(t)(testMedium.HEBEz(obs, a, c, 2))
	parts := field(t)(testMedium.HEBEz(obs, a, b, 2)) + field(t)(testMedium.HEBEz(obs, b, c, 2))
	relClose(t, whole, parts, 1e-10)

	reversed := field(t)(testMedium.HEBEz(obs, c, a, 2))
	relClose(t, -whole, reversed, 1e-15)
}

func TestVEBMatchesVEDForShortBipole(t *testing.T) {
	obs := Point{X: 20, Y: -5, Z: 40}
	const zp, l = 90.0, 0.1
	veb, err := testMedium.VEBEz(obs, 0, 0, zp-l/2, zp+l/2, 1)
	require.NoError(t, err)
	ved := field(t)(testMedium.VEDEz(obs, Point{Z: zp}, l))
	relClose(t, ved, veb, 1e-3)
}

func TestVEBOrientation(t *testing.T) {
	obs := Point{Z: 10}
	down, err := testMedium.VEBEz(obs, 0, 0, 100, 200, 1)
	require.NoError(t, err)
	up, err := testMedium.VEBEz(obs, 0, 0, 200, 100, 1)
	require.NoError(t, err)
	relClose(t, -down, up, 1e-12)

	scaled, err := testMedium.VEBEz(obs, 0, 0, 100, 200, 3)
	require.NoError(t, err)
	relClose(t, 3*down, scaled, 1e-14)
}

func TestVEBRejectsObservationOnBipole(t *testing.T) {
	_, err := testMedium.VEBEz(Point{Z: 150}, 0, 0, 100, 200, 1)
	assert.ErrorIs(t, err, ErrBadGeometry)

	_, err = testMedium.VEBEz(Point{X: 1, Z: 150}, 0, 0, 100, 200, 1)
	assert.NoError(t, err)
}

// Observation points on a grounding point, on a dipole or on its image are
// singular and reported instead of evaluated.
func TestFieldsRejectSingularPoints(t *testing.T) {
	a, b := Point{X: 10}, Point{X: 1000}

	_, err := testMedium.HEBEz(Point{X: 10}, a, b, 1)
	assert.ErrorIs(t, err, ErrBadGeometry)
	_, err = testMedium.HEBEz(Point{X: 1000}, a, b, 1)
	assert.ErrorIs(t, err, ErrBadGeometry)
	// elsewhere on the surface Ez vanishes
	ez, err := testMedium.HEBEz(Point{X: 500, Y: 3}, a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), ez)

	_, err = testMedium.HEDEz(Point{X: 4, Y: -2}, Point{X: 4, Y: -2, Z: 7}, 0, 1)
	assert.ErrorIs(t, err, ErrBadGeometry)

	src := Point{Z: 52.5}
	_, err = testMedium.VEDEz(Point{Z: 52.5}, src, 1)
	assert.ErrorIs(t, err, ErrBadGeometry)
	_, err = testMedium.VEDEz(Point{Z: -52.5}, src, 1)
	assert.ErrorIs(t, err, ErrBadGeometry)

	// on axis between segment centers the field is finite
	ez, err = testMedium.VEDEz(Point{Z: 55}, src, 1)
	require.NoError(t, err)
	assert.False(t, cmplx.IsNaN(ez) || cmplx.IsInf(ez))
}

// The halfspace surface is insulating, so a buried vertical dipole gives no
// vertical field at the surface.
func TestVEDVanishesAtSurface(t *testing.T) {
	ez := field(t)(testMedium.VEDEz(Point{X: 35, Y: 12, Z: 0}, Point{Z: 60}, 1))
	assert.InDelta(t, 0, real(ez), 1e-30)
	assert.InDelta(t, 0, imag(ez), 1e-30)
}

func TestQuadrature(t *testing.T) {
	q := quadrature{EpsAbs: 1e-20, EpsRel: 1e-12, Limit: 200}
	v, _ := q.integrate(math.Sin, 0, math.Pi)
	assert.InDelta(t, 2, v, 1e-12)
	v, _ = q.integrate(math.Sin, math.Pi, 0)
	assert.InDelta(t, -2, v, 1e-12)
	v, _ = q.integrate(math.Sin, 1, 1)
	assert.Equal(t, 0.0, v)

	// a sharp peak forces subdivision
	peak := func(x float64) float64 { return 1 / (1e-4 + x*x) }
	v, _ = q.integrate(peak, -1, 1)
	assert.InEpsilon(t, 2*math.Atan(1/1e-2)/1e-2, v, 1e-9)
}
