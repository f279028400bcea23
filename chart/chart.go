// Package chart renders simulated paths and analytic price curves to
// image files using gonum/plot.
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/rustyeddy/pricer/mc"
	"github.com/rustyeddy/pricer/pricing"
)

// Paths draws up to maxPaths simulated trajectories against step index
// and saves the plot to file (format chosen by extension, e.g. .png).
// maxPaths <= 0 draws every path; keep it small for readable output.
func Paths(ps *mc.PathSet, maxPaths int, file string) error {
	n := ps.Paths()
	if maxPaths > 0 && n > maxPaths {
		n = maxPaths
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Simulated GBM paths (S=%g, sigma=%g)", ps.Params.S, ps.Params.Sigma)
	p.X.Label.Text = "step"
	p.Y.Label.Text = "price"

	for i := 0; i < n; i++ {
		row := ps.Path(i)
		pts := make(plotter.XYs, len(row))
		for j, v := range row {
			pts[j].X = float64(j)
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart paths: %w", err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, file); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// PriceCurve draws the analytic call and put values against spot,
// holding the remaining parameters of base fixed.
func PriceCurve(base pricing.Params, spots []float64, file string) error {
	if len(spots) == 0 {
		return fmt.Errorf("%w: need at least one spot value", pricing.ErrInvalidParams)
	}

	callPts := make(plotter.XYs, len(spots))
	putPts := make(plotter.XYs, len(spots))
	for i, s := range spots {
		p := base
		p.S = s
		if err := p.Validate(); err != nil {
			return err
		}
		call, put := pricing.Price(p)
		callPts[i] = plotter.XY{X: s, Y: call}
		putPts[i] = plotter.XY{X: s, Y: put}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Black-Scholes value (K=%g, T=%g, r=%g, sigma=%g)",
		base.K, base.T, base.R, base.Sigma)
	p.X.Label.Text = "spot"
	p.Y.Label.Text = "option value"
	p.Legend.Top = true

	if err := plotutil.AddLines(p, "call", callPts, "put", putPts); err != nil {
		return fmt.Errorf("chart price curve: %w", err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, file); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
