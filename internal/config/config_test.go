package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"em_casing/internal/engine"
	"em_casing/internal/halfspace"
	"em_casing/internal/hankel"
	"em_casing/internal/wire"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadINI(t *testing.T) {
	path := writeFile(t, "run.ini", `
[casing]
frequency = 2
conductivity = 5e6
length = 1000
segments = 100
filter = 140

[wire]
current = 10
end_x = 800

[run]
method = segmented
strategy = direct
engine = hankel
workers = 4
symmetry = true
plot = true
receivers = rx.csv
`)
	got, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Casing.Frequency = 2
	want.Casing.Conductivity = 5e6
	want.Casing.Length = 1000
	want.Casing.Segments = 100
	want.Casing.Filter = "140"
	want.Wire.Current = 10
	want.Wire.End = [2]float64{800, 0}
	want.Run = Run{
		Method:    "segmented",
		Strategy:  "direct",
		Engine:    "hankel",
		Workers:   4,
		Symmetry:  true,
		OutputDir: ".",
		Plot:      true,
		Receivers: "rx.csv",
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, filepath.Join(filepath.Dir(path), "rx.csv"), got.Resolve(got.Run.Receivers))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
casing:
  frequency: 1
  inner_radius: 0.09
  filter: "201"
wire:
  start: [10, 0]
  end: [1010, 5]
run:
  workers: 8
`)
	got, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Casing.Frequency = 1
	want.Casing.InnerRadius = 0.09
	want.Wire.Start = [2]float64{10, 0}
	want.Wire.End = [2]float64{1010, 5}
	want.Run.Workers = 8
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	p, err := got.Params()
	require.NoError(t, err)
	assert.Equal(t, hankel.Filter201, p.Filter)
	assert.Equal(t, 0.09, p.InnerRadius)

	w, err := got.WirePath()
	require.NoError(t, err)
	assert.Equal(t, wire.Straight(10, 0, 1010, 5), w)
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	for _, name := range []string{"empty.ini", "empty.yml"} {
		got, err := Load(writeFile(t, name, ""))
		require.NoError(t, err, name)
		if diff := cmp.Diff(Default(), got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
		p, err := got.Params()
		require.NoError(t, err)
		assert.Equal(t, halfspace.DefaultParams(), p)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "run.toml", "a = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "bad.ini", "[casing]\nfrequency = high\n"))
	assert.ErrorContains(t, err, "frequency")

	_, err = Load(writeFile(t, "bad.ini", "[casing]\nsegments = 2.5\n"))
	assert.ErrorContains(t, err, "segments")

	_, err = Load(writeFile(t, "typo.yaml", "casing:\n  frequencyy: 1\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParamsAndMethodValidate(t *testing.T) {
	cfg := Default()
	cfg.Casing.InnerRadius = cfg.Casing.OuterRadius
	_, err := cfg.Params()
	assert.ErrorIs(t, err, halfspace.ErrInvalidParams)

	cfg = Default()
	cfg.Casing.Filter = "101"
	_, err = cfg.Params()
	assert.ErrorIs(t, err, halfspace.ErrInvalidParams)

	cfg.Run.Method = "numerical"
	_, err = cfg.Method()
	assert.ErrorIs(t, err, halfspace.ErrUnknownMethod)

	cfg.Run.Strategy = "cholesky"
	_, err = cfg.Strategy()
	assert.ErrorIs(t, err, halfspace.ErrUnknownStrategy)
	cfg.Run.Strategy = "direct"
	s, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, halfspace.StrategyDirect, s)

	cfg.Run.Engine = "fdtd"
	_, err = cfg.Engine(halfspace.DefaultParams().Halfspace())
	assert.ErrorIs(t, err, engine.ErrUnknownEngine)
	cfg.Run.Engine = "hankel"
	eng, err := cfg.Engine(halfspace.DefaultParams().Halfspace())
	require.NoError(t, err)
	assert.IsType(t, &engine.Hankel{}, eng)

	cfg.Run.Method = "segmented"
	m, err := cfg.Method()
	require.NoError(t, err)
	assert.Equal(t, halfspace.MethodSegmented, m)
}

func TestWirePathFromFile(t *testing.T) {
	dir := t.TempDir()
	want := wire.NewPath(wire.Node{X: 10}, wire.Node{X: 500, Y: 20}, wire.Node{X: 1000})
	require.NoError(t, want.Save(filepath.Join(dir, "wire.csv")))

	path := filepath.Join(dir, "run.ini")
	require.NoError(t, os.WriteFile(path, []byte("[wire]\nfile = wire.csv\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)

	got, err := cfg.WirePath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
