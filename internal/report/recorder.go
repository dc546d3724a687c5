// Package report writes casing solutions and fields to disk.
package report

import (
	"fmt"
	"math/cmplx"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"em_casing/internal/casing"
	"em_casing/internal/halfspace"
	"em_casing/internal/wire"
)

const (
	SolutionFile = "casing_current.csv"
	FieldsFile   = "fields.csv"
	ProfileFile  = "casing_current.png"
	WireFile     = "wire.csv"
)

// SegmentRow is one casing segment of a solution.
type SegmentRow struct {
	Depth     float64 `csv:"depth"`
	DensityRe float64 `csv:"j_re"`
	DensityIm float64 `csv:"j_im"`
	DensityAb float64 `csv:"j_abs"`
	CurrentRe float64 `csv:"i_re"`
	CurrentIm float64 `csv:"i_im"`
	MomentRe  float64 `csv:"moment_re"`
	MomentIm  float64 `csv:"moment_im"`
}

// FieldRow is one receiver of a field evaluation.
type FieldRow struct {
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	TotalRe  float64 `csv:"total_re"`
	TotalIm  float64 `csv:"total_im"`
	WireRe   float64 `csv:"wire_re"`
	WireIm   float64 `csv:"wire_im"`
	CasingRe float64 `csv:"casing_re"`
	CasingIm float64 `csv:"casing_im"`
}

// ReceiverRow is one line of a receiver file.
type ReceiverRow struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
	Z float64 `csv:"z"`
}

func SegmentRows(sol *casing.Solution) []SegmentRow {
	rows := make([]SegmentRow, len(sol.Depths))
	for k := range rows {
		rows[k] = SegmentRow{
			Depth:     sol.Depths[k],
			DensityRe: real(sol.Density[k]),
			DensityIm: imag(sol.Density[k]),
			DensityAb: cmplx.Abs(sol.Density[k]),
			CurrentRe: real(sol.Current[k]),
			CurrentIm: imag(sol.Current[k]),
			MomentRe:  real(sol.Moment[k]),
			MomentIm:  imag(sol.Moment[k]),
		}
	}
	return rows
}

func FieldRows(f *casing.Fields) []FieldRow {
	rows := make([]FieldRow, len(f.Receivers))
	for r, rec := range f.Receivers {
		rows[r] = FieldRow{
			X: rec.X, Y: rec.Y, Z: rec.Z,
			TotalRe:  real(f.Total[r]),
			TotalIm:  imag(f.Total[r]),
			WireRe:   real(f.Wire[r]),
			WireIm:   imag(f.Wire[r]),
			CasingRe: real(f.Casing[r]),
			CasingIm: imag(f.Casing[r]),
		}
	}
	return rows
}

// LoadReceivers reads x,y,z observation points, z positive down.
func LoadReceivers(path string) ([]halfspace.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer file.Close()

	var rows []ReceiverRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("report: reading %s: %w", path, err)
	}
	pts := make([]halfspace.Point, len(rows))
	for i, r := range rows {
		pts[i] = halfspace.Point{X: r.X, Y: r.Y, Z: r.Z}
	}
	return pts, nil
}

/*
Recorder saves the results of one run under Dir

	Dir: output folder, created on first use
	Plot: also draw the current profile
*/
type Recorder struct {
	Dir  string
	Plot bool
}

func NewRecorder(dir string, plot bool) *Recorder {
	return &Recorder{Dir: dir, Plot: plot}
}

func (r *Recorder) path(name string) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("report: creating %s: %w", r.Dir, err)
	}
	return filepath.Join(r.Dir, name), nil
}

func writeCSV(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := gocsv.MarshalFile(rows, file); err != nil {
		file.Close()
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return file.Close()
}

// RecordSolution writes the segment table and, when enabled, the profile plot.
func (r *Recorder) RecordSolution(sol *casing.Solution) error {
	path, err := r.path(SolutionFile)
	if err != nil {
		return err
	}
	log.Infof("Save casing currents to `%s`", path)
	rows := SegmentRows(sol)
	if err := writeCSV(path, &rows); err != nil {
		return err
	}
	if !r.Plot {
		return nil
	}
	path, err = r.path(ProfileFile)
	if err != nil {
		return err
	}
	log.Infof("Save current profile to `%s`", path)
	return PlotProfile(sol, path)
}

func (r *Recorder) RecordFields(f *casing.Fields) error {
	path, err := r.path(FieldsFile)
	if err != nil {
		return err
	}
	log.Infof("Save fields to `%s`", path)
	rows := FieldRows(f)
	return writeCSV(path, &rows)
}

// RecordWire writes the wire nodes the run was solved with.
func (r *Recorder) RecordWire(p wire.Path) error {
	path, err := r.path(WireFile)
	if err != nil {
		return err
	}
	log.WithField("length", p.Length()).Infof("Save wire to `%s`", path)
	if err := p.Save(path); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}
