package renderer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned when there is no slice to draw.
var ErrEmptyChart = errors.New("nothing to chart")

// ChartFormat returns the chart renderer for a file name, SVG for ".svg" and
// PNG otherwise.
func ChartFormat(filename string) chart.RendererProvider {
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		return chart.SVG
	}
	return chart.PNG
}

// RenderPieChart draws the allocation slices as a pie chart, each slice in its
// color.
func RenderPieChart(w io.Writer, a *Allocation, format chart.RendererProvider) error {
	if a == nil || len(a.Slices) == 0 {
		return ErrEmptyChart
	}
	values := make([]chart.Value, 0, len(a.Slices))
	for _, s := range a.Slices {
		values = append(values, chart.Value{
			Value: s.Value.Decimal().InexactFloat64(),
			Label: fmt.Sprintf("%s %s", s.Label, s.Percentage),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%s by %s", a.Name, a.GroupBy),
		Width:  640,
		Height: 640,
		Values: values,
	}
	if err := pie.Render(format, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
