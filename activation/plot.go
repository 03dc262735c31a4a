package activation

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotPNG renders the curve of each function in fns over [xmin, xmax] to a
// single PNG at path, one line per function, legended by Name(). It gives
// the "plotting formula" axis of a Function (spec.md §6 lists
// formula_gnuplot alongside calculate/name as one of the three observable
// operations) an actual rendered counterpart, using gonum.org/v1/plot —
// already an indirect dependency of this module's lineage via
// emer-emergent/emer-leabra, which both plot simulation traces with it.
//
// samples must be >= 2.
func PlotPNG(fns []Function, path string, xmin, xmax float64, samples int) error {
	if samples < 2 {
		return fmt.Errorf("activation: PlotPNG: samples must be >= 2, got %d", samples)
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("activation: PlotPNG: %w", err)
	}
	p.Title.Text = "Activation functions"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"

	step := (xmax - xmin) / float64(samples-1)
	for _, f := range fns {
		pts := make(plotter.XYs, samples)
		for i := range pts {
			x := xmin + float64(i)*step
			pts[i].X = x
			pts[i].Y = f.Calculate(x)
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("activation: PlotPNG: %s: %w", f.Name(), err)
		}
		p.Add(line)
		p.Legend.Add(f.Name(), line)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("activation: PlotPNG: save %s: %w", path, err)
	}

	return nil
}
