package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spinlab/magcavity/internal/autocorr"
)

// RenderHTML writes an interactive line chart of the curve to w as a
// standalone HTML page.
func RenderHTML(curve autocorr.Curve, w io.Writer) error {
	if len(curve) == 0 {
		return fmt.Errorf("cannot render empty curve")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Cavity field autocorrelation",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cavity field autocorrelation",
			Subtitle: fmt.Sprintf("%d separation radii", len(curve)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Separation (m)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "autocorrelation"}),
	)

	x := make([]string, 0, len(curve))
	y := make([]opts.LineData, 0, len(curve))
	for _, p := range curve {
		x = append(x, fmt.Sprintf("%.3g", p.SeparationM))
		y = append(y, opts.LineData{Value: p.Value})
	}

	line.SetXAxis(x)
	line.AddSeries("autocorrelation", y, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
