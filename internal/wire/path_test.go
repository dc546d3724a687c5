package wire

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactDropsZeroLengthSegments(t *testing.T) {
	p := NewPath(
		Node{0, 0},
		Node{0, 0},
		Node{100, 0},
		Node{100, 50},
		Node{100, 50},
	)
	c := p.Compact()
	assert.Equal(t, []Node{{0, 0}, {100, 0}, {100, 50}}, c.Nodes)
	assert.Equal(t, []float64{100, 50}, p.SegmentLengths())
	assert.Equal(t, p.First(), c.First())
	assert.Equal(t, p.Last(), c.Last())
	assert.InDelta(t, 150, p.Length(), 1e-12)
}

func TestCompactAllZero(t *testing.T) {
	c := NewPath(Node{1, 1}, Node{1, 1}).Compact()
	assert.Len(t, c.Nodes, 1)
	assert.Empty(t, c.Segments())
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, NewPath(Node{0, 0}).Validate(), ErrTooFewNodes)
	assert.ErrorIs(t, Path{}.Validate(), ErrTooFewNodes)
	assert.NoError(t, Straight(0, 0, 10, 0).Validate())
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "wire.csv")
	require.NoError(t, os.WriteFile(file, []byte("x,y\n-500,0\n0,0\n0,0\n800,250.5\n"), 0o644))

	p, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, []Node{{-500, 0}, {0, 0}, {0, 0}, {800, 250.5}}, p.Nodes)

	out := filepath.Join(dir, "out.csv")
	require.NoError(t, p.Compact().Save(out))
	back, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, p.Compact().Nodes, back.Nodes)
}

func TestLoadRejectsShortPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wire.csv")
	require.NoError(t, os.WriteFile(file, []byte("x,y\n1,2\n"), 0o644))
	_, err := Load(file)
	assert.ErrorIs(t, err, ErrTooFewNodes)
}
