// Package report renders autocorrelation curves for display: a static PNG
// via gonum/plot and an interactive HTML chart via go-echarts. This is the
// display collaborator; it consumes finished curves and never touches the
// estimator.
package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spinlab/magcavity/internal/autocorr"
)

// SavePNG writes a line plot of the curve to path as a PNG.
func SavePNG(curve autocorr.Curve, path string) error {
	if len(curve) == 0 {
		return fmt.Errorf("cannot plot empty curve")
	}

	p := plot.New()
	p.Title.Text = "Cavity field autocorrelation"
	p.X.Label.Text = "Separation (m)"
	p.Y.Label.Text = "Mean dot(B(p), B(p+r))"

	pts := make(plotter.XYs, 0, len(curve))
	for _, c := range curve {
		pts = append(pts, plotter.XY{X: c.SeparationM, Y: c.Value})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("autocorrelation", line)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
