// Package config reads a casing run from an INI or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"em_casing/internal/engine"
	"em_casing/internal/halfspace"
	"em_casing/internal/hankel"
	"em_casing/internal/wire"
)

var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Casing is the [casing] section.
type Casing struct {
	Frequency              float64 `yaml:"frequency" json:"frequency"`
	BackgroundConductivity float64 `yaml:"background_conductivity" json:"background_conductivity"`
	Conductivity           float64 `yaml:"conductivity" json:"conductivity"`
	OuterRadius            float64 `yaml:"outer_radius" json:"outer_radius"`
	InnerRadius            float64 `yaml:"inner_radius" json:"inner_radius"`
	Length                 float64 `yaml:"length" json:"length"`
	Segments               int     `yaml:"segments" json:"segments"`
	Filter                 string  `yaml:"filter" json:"filter"`
}

/*
The [wire] section

	File: CSV of x,y nodes; when empty the straight wire Start to End is used
	Current: A
*/
type Wire struct {
	File    string     `yaml:"file" json:"file"`
	Current float64    `yaml:"current" json:"current"`
	Start   [2]float64 `yaml:"start,flow" json:"start"`
	End     [2]float64 `yaml:"end,flow" json:"end"`
}

// Run is the [run] section.
type Run struct {
	Method    string `yaml:"method"`
	Strategy  string `yaml:"strategy"`
	Engine    string `yaml:"engine"`
	Workers   int    `yaml:"workers"`
	Symmetry  bool   `yaml:"symmetry"`
	OutputDir string `yaml:"output_dir"`
	Plot      bool   `yaml:"plot"`
	Receivers string `yaml:"receivers"`
}

type Config struct {
	Casing Casing `yaml:"casing"`
	Wire   Wire   `yaml:"wire"`
	Run    Run    `yaml:"run"`

	dir string // directory relative file names resolve against
}

func Default() *Config {
	p := halfspace.DefaultParams()
	return &Config{
		Casing: Casing{
			Frequency:              p.Frequency,
			BackgroundConductivity: p.BackgroundConductivity,
			Conductivity:           p.CasingConductivity,
			OuterRadius:            p.OuterRadius,
			InnerRadius:            p.InnerRadius,
			Length:                 p.CasingLength,
			Segments:               p.NumSegments,
			Filter:                 string(p.Filter),
		},
		Wire: Wire{Current: p.WireCurrent},
		Run: Run{
			Method:    string(halfspace.MethodAnalytic),
			Strategy:  string(halfspace.StrategyGamma),
			Engine:    engine.NameAnalytic,
			Workers:   1,
			OutputDir: ".",
		},
	}
}

/*
Load reads path, choosing the format by extension (.ini, .yaml, .yml).
Keys that are absent keep their Default value.

Returns:
	ErrUnsupportedFormat for any other extension, or the read/parse error
*/
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		cfg, err = loadINI(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

func loadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()

	c := file.Section("casing")
	floats := []struct {
		key string
		dst *float64
	}{
		{"frequency", &cfg.Casing.Frequency},
		{"background_conductivity", &cfg.Casing.BackgroundConductivity},
		{"conductivity", &cfg.Casing.Conductivity},
		{"outer_radius", &cfg.Casing.OuterRadius},
		{"inner_radius", &cfg.Casing.InnerRadius},
		{"length", &cfg.Casing.Length},
	}
	for _, f := range floats {
		if err := floatKey(c, f.key, f.dst); err != nil {
			return nil, err
		}
	}
	if err := intKey(c, "segments", &cfg.Casing.Segments); err != nil {
		return nil, err
	}
	cfg.Casing.Filter = c.Key("filter").MustString(cfg.Casing.Filter)

	w := file.Section("wire")
	cfg.Wire.File = w.Key("file").String()
	wireFloats := []struct {
		key string
		dst *float64
	}{
		{"current", &cfg.Wire.Current},
		{"start_x", &cfg.Wire.Start[0]},
		{"start_y", &cfg.Wire.Start[1]},
		{"end_x", &cfg.Wire.End[0]},
		{"end_y", &cfg.Wire.End[1]},
	}
	for _, f := range wireFloats {
		if err := floatKey(w, f.key, f.dst); err != nil {
			return nil, err
		}
	}

	r := file.Section("run")
	cfg.Run = Run{
		Method:    r.Key("method").MustString(cfg.Run.Method),
		Strategy:  r.Key("strategy").MustString(cfg.Run.Strategy),
		Engine:    r.Key("engine").MustString(cfg.Run.Engine),
		Workers:   r.Key("workers").MustInt(cfg.Run.Workers),
		Symmetry:  r.Key("symmetry").MustBool(cfg.Run.Symmetry),
		OutputDir: r.Key("output_dir").MustString(cfg.Run.OutputDir),
		Plot:      r.Key("plot").MustBool(cfg.Run.Plot),
		Receivers: r.Key("receivers").String(),
	}
	return cfg, nil
}

// floatKey leaves dst alone when the key is absent and fails on a malformed
// value instead of falling back to the default.
func floatKey(sec *ini.Section, name string, dst *float64) error {
	if !sec.HasKey(name) {
		return nil
	}
	v, err := sec.Key(name).Float64()
	if err != nil {
		return fmt.Errorf("config: [%s] %s: %w", sec.Name(), name, err)
	}
	*dst = v
	return nil
}

func intKey(sec *ini.Section, name string, dst *int) error {
	if !sec.HasKey(name) {
		return nil
	}
	v, err := sec.Key(name).Int()
	if err != nil {
		return fmt.Errorf("config: [%s] %s: %w", sec.Name(), name, err)
	}
	*dst = v
	return nil
}

// Params converts the [casing] and [wire] sections and validates them.
func (c *Config) Params() (halfspace.Params, error) {
	p := halfspace.Params{
		Frequency:              c.Casing.Frequency,
		BackgroundConductivity: c.Casing.BackgroundConductivity,
		CasingConductivity:     c.Casing.Conductivity,
		OuterRadius:            c.Casing.OuterRadius,
		InnerRadius:            c.Casing.InnerRadius,
		CasingLength:           c.Casing.Length,
		NumSegments:            c.Casing.Segments,
		WireCurrent:            c.Wire.Current,
		Filter:                 hankel.FilterKind(c.Casing.Filter),
	}
	if err := p.Validate(); err != nil {
		return halfspace.Params{}, err
	}
	return p, nil
}

// Method is the excitation strategy of the [run] section.
func (c *Config) Method() (halfspace.Method, error) {
	m := halfspace.Method(c.Run.Method)
	if _, err := m.Excitation(); err != nil {
		return "", err
	}
	return m, nil
}

// Strategy is the matrix strategy of the [run] section.
func (c *Config) Strategy() (halfspace.Strategy, error) {
	s := halfspace.Strategy(c.Run.Strategy)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Engine builds the field engine of the [run] section for medium h.
func (c *Config) Engine(h halfspace.Halfspace) (engine.Engine, error) {
	return engine.New(c.Run.Engine, h)
}

// Resolve makes a relative file name relative to the config file.
func (c *Config) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) || c.dir == "" {
		return name
	}
	return filepath.Join(c.dir, name)
}

// WirePath loads the wire file, or builds the straight wire when none is set.
func (c *Config) WirePath() (wire.Path, error) {
	if c.Wire.File == "" {
		return wire.Straight(c.Wire.Start[0], c.Wire.Start[1], c.Wire.End[0], c.Wire.End[1]), nil
	}
	return wire.Load(c.Resolve(c.Wire.File))
}
