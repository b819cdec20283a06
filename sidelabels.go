package labels

import (
	"fmt"
	"image/color"
	"math"
)

// Side labels are wrapped at SideLabelWrapWidth columns and put at SideLabelOffset times the device x-coordinate of the rightmost series end.
const (
	SideLabelWrapWidth = 15
	SideLabelOffset    = 1.05
)

// SideLabel is a label at the right side of a chart that replaces the legend entry of a line series. End is the last point of the series and Position the left-middle point of the text, both in device space.
type SideLabel struct {
	Index        int // index of the series
	Text         string
	End          Point
	Position     Point
	DataEnd      Point
	DataPosition Point
	Color        color.Color
}

// LineChart is a rendered chart whose line series can be labeled at their ends.
type LineChart interface {
	LineSeries() ([]Series, error)
	PixelCapturer
	TextMeasurer
	DrawSideLabel(SideLabel) error
}

// SpreadEnds returns the label positions at x for series ending at ends, with labels of the given heights. The y-coordinates are spread so that no two labels overlap while staying as close to their series end as possible.
func SpreadEnds(ends []Point, heights []float64, x float64) []Point {
	ys := make([]float64, len(ends))
	margins := make([]float64, len(ends))
	for i, end := range ends {
		ys[i] = end.Y
		margins[i] = heights[i] / 2.0
	}
	ys = Spread(ys, margins)

	pts := make([]Point, len(ends))
	for i, y := range ys {
		pts[i] = Point{X: x, Y: y}
	}
	return pts
}

// LineLabels labels every labeled line series of the chart at its last point, to the right of all series, and draws the labels on the chart. The chart must have been rendered before.
func LineLabels(chart LineChart, cache *OccupancyCache) ([]SideLabel, error) {
	series, err := chart.LineSeries()
	if err != nil {
		return nil, err
	}

	if cache == nil {
		cache = NewOccupancyCache()
	}
	snapshot, err := cache.Get(chart.SurfaceKey(), chart.Capture)
	if err != nil {
		return nil, fmt.Errorf("capture chart: %w", err)
	}
	transform := snapshot.Transform
	if transform == nil {
		transform = Identity
	}

	sideLabels := []SideLabel{}
	ends := []Point{}
	heights := []float64{}
	xmax := math.Inf(-1)
	for i, s := range series {
		if len(s.Points) == 0 || s.Label == "" {
			continue
		}
		text := Wrap(s.Label, SideLabelWrapWidth)
		bounds, err := chart.MeasureText(text)
		if err != nil {
			return nil, fmt.Errorf("measure side label %d: %w", i, err)
		}

		end := transform.ToDevice(s.Points[len(s.Points)-1])
		col := s.Color(len(s.Points) - 1)
		if col == nil {
			col = color.Black
		}
		sideLabels = append(sideLabels, SideLabel{
			Index:   i,
			Text:    text,
			End:     end,
			DataEnd: s.Points[len(s.Points)-1],
			Color:   col,
		})
		ends = append(ends, end)
		heights = append(heights, bounds.H())
		xmax = math.Max(xmax, end.X)
	}
	if len(sideLabels) == 0 {
		return sideLabels, nil
	}

	positions := SpreadEnds(ends, heights, SideLabelOffset*xmax)
	for i := range sideLabels {
		sideLabels[i].Position = positions[i]
		sideLabels[i].DataPosition = transform.ToData(positions[i])
		if err := chart.DrawSideLabel(sideLabels[i]); err != nil {
			return nil, fmt.Errorf("draw side label %d: %w", sideLabels[i].Index, err)
		}
	}
	return sideLabels, nil
}
