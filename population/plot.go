// SPDX-License-Identifier: MIT
// Package: genops/population

package population

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions controls the rendered chart.
type PlotOptions struct {
	Width, Height vg.Length
	Color         color.Color
	MarkerRadius  vg.Length
}

// DefaultPlotOptions returns a 6x4 inch chart with green square markers.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:        6 * vg.Inch,
		Height:       4 * vg.Inch,
		Color:        color.RGBA{G: 128, A: 255},
		MarkerRadius: vg.Points(5),
	}
}

// Plot renders individual index against quality and saves it to path. The
// image format follows the file extension (png, svg, pdf, ...).
func (s Snapshot) Plot(path, title string) error {
	return s.PlotWith(path, title, DefaultPlotOptions())
}

// PlotWith is Plot with explicit options.
func (s Snapshot) PlotWith(path, title string, opts PlotOptions) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Individual"
	p.Y.Label.Text = "Quality"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.Qualities))
	for i, q := range s.Qualities {
		pts[i].X = float64(i)
		pts[i].Y = q
	}
	line, marks, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}
	line.Color = opts.Color
	marks.Shape = draw.BoxGlyph{}
	marks.Color = opts.Color
	marks.Radius = opts.MarkerRadius
	p.Add(line, marks)

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	return nil
}
