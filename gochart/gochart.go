// Package gochart enumerates the data series of github.com/wcharczuk/go-chart charts for labeling, and redraws them on a canvasplot.Plot.
package gochart

import (
	"fmt"
	"image/color"

	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/canvasplot"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func continuous(s chart.Series) (chart.ContinuousSeries, bool) {
	switch t := s.(type) {
	case chart.ContinuousSeries:
		return t, true
	case *chart.ContinuousSeries:
		return *t, true
	}
	return chart.ContinuousSeries{}, false
}

func drawingColor(col drawing.Color) color.Color {
	if col.IsZero() {
		return nil
	}
	return color.RGBA{col.R, col.G, col.B, col.A}
}

// convert returns the series of a continuous go-chart series. Series without a stroke are drawn as dots and are scatter series.
func convert(cs chart.ContinuousSeries) (labels.Series, error) {
	if len(cs.XValues) != len(cs.YValues) {
		return labels.Series{}, fmt.Errorf("series %q: got %d x values and %d y values", cs.Name, len(cs.XValues), len(cs.YValues))
	}
	s := labels.Series{Kind: labels.LineMarks, Label: cs.Name, Points: make([]labels.Point, len(cs.XValues))}
	for i := range cs.XValues {
		s.Points[i] = labels.Point{X: cs.XValues[i], Y: cs.YValues[i]}
	}

	col := drawingColor(cs.Style.StrokeColor)
	if cs.Style.StrokeWidth == chart.Disabled {
		s.Kind = labels.ScatterMarks
		col = drawingColor(cs.Style.DotColor)
	}
	if col != nil {
		s.Colors = []color.Color{col}
	}
	return s, nil
}

// AllSeries returns the continuous series of the chart in order, skipping hidden series.
func AllSeries(ch chart.Chart) ([]labels.Series, error) {
	series := []labels.Series{}
	for _, s := range ch.Series {
		cs, ok := continuous(s)
		if !ok || cs.Style.Hidden {
			continue
		}
		ls, err := convert(cs)
		if err != nil {
			return nil, err
		}
		series = append(series, ls)
	}
	return series, nil
}

// Series returns the first visible continuous series of the chart.
func Series(ch chart.Chart) (labels.Series, error) {
	series, err := AllSeries(ch)
	if err != nil {
		return labels.Series{}, err
	} else if len(series) == 0 {
		return labels.Series{}, labels.ErrNoMatchingSeries
	}
	return series[0], nil
}

// Plot draws the continuous series of the chart on a new plot of width and height in millimeters, so that they can be labeled. The data range is fitted to all series.
func Plot(ch chart.Chart, width, height, dpi float64) (*canvasplot.Plot, error) {
	series, err := AllSeries(ch)
	if err != nil {
		return nil, err
	}

	p, err := canvasplot.New(width, height, dpi)
	if err != nil {
		return nil, err
	}
	xs, ys := []float64{}, []float64{}
	for _, s := range series {
		for _, pt := range s.Points {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	}
	p.FitDataRange(xs, ys, 0.05)
	p.Frame()

	for _, s := range series {
		xs, ys := make([]float64, len(s.Points)), make([]float64, len(s.Points))
		for i, pt := range s.Points {
			xs[i], ys[i] = pt.X, pt.Y
		}
		if s.Kind == labels.ScatterMarks {
			err = p.Scatter(xs, ys, s.Colors)
		} else {
			err = p.Line(xs, ys, s.Color(0), s.Label)
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}
