package harmonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrixConversionConjugates(t *testing.T) {
	a := NewMatrix[Minus](2, 2)
	a.Set(0, 0, 1+2i)
	a.Set(0, 1, -3i)
	a.Set(1, 0, 4)
	a.Set(1, 1, -1-1i)

	p := MatrixToPlus(a)
	assert.Equal(t, "e^(+iwt)", p.Convention())
	assert.Equal(t, "e^(-iwt)", a.Convention())
	assert.Equal(t, 1-2i, p.At(0, 0))
	assert.Equal(t, 3i, p.At(0, 1))
	assert.Equal(t, complex(4, 0), p.At(1, 0))
	assert.Equal(t, -1+1i, p.At(1, 1))

	// the source is untouched
	assert.Equal(t, 1+2i, a.At(0, 0))
}

func TestVectorConversionConjugates(t *testing.T) {
	v := VectorFrom[Plus]([]complex128{1 + 1i, -2i})
	m := VectorToMinus(v)
	assert.Equal(t, []complex128{1 - 1i, 2i}, m.RawData())
	assert.Equal(t, v.RawData(), VectorToPlus(m).RawData())
}

func TestCopiesDoNotAlias(t *testing.T) {
	src := mat.NewCDense(1, 1, []complex128{5})
	a := MatrixFrom[Plus](src)
	src.Set(0, 0, 7)
	assert.Equal(t, complex(5, 0), a.At(0, 0))

	c := a.CDense()
	c.Set(0, 0, 9)
	assert.Equal(t, complex(5, 0), a.At(0, 0))

	data := []complex128{1}
	v := VectorFrom[Minus](data)
	data[0] = 2
	require.Equal(t, 1, v.Len())
	assert.Equal(t, complex(1, 0), v.At(0))
}
