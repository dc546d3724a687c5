package report

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"em_casing/internal/casing"
)

var ErrEmptySolution = errors.New("report: solution has no segments")

// PlotProfile draws |j| against depth. The image format follows the
// extension of path.
func PlotProfile(sol *casing.Solution, path string) error {
	if len(sol.Depths) == 0 {
		return ErrEmptySolution
	}
	pts := make(plotter.XYs, len(sol.Depths))
	for k, z := range sol.Depths {
		pts[k].X = z
		pts[k].Y = cmplx.Abs(sol.Density[k])
	}

	p := plot.New()
	p.Title.Text = "Casing current density"
	p.X.Label.Text = "depth (m)"
	p.Y.Label.Text = "|j| (A/m2)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: saving %s: %w", path, err)
	}
	return nil
}
