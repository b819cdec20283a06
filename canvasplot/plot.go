// Package canvasplot draws minimal scatter and line charts with github.com/tdewolff/canvas that can be annotated by package labels.
package canvasplot

import (
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/labels"
	"gonum.org/v1/gonum/floats"
)

// Defaults of a plot in millimeters.
const (
	DefaultMargin       = 12.0
	DefaultMarkerRadius = 0.8
)

// Plot is a chart with linear axes. Data series are drawn immediately and recorded so that they can be labeled afterwards.
type Plot struct {
	*Surface
	MarkerRadius float64

	width, height float64
	margins       [4]float64 // left, bottom, right, top
	data          labels.Rect
	series        []labels.Series
}

// New returns an empty plot of width and height in millimeters on a white background, with the data range set to the unit square.
func New(width, height, dpi float64) (*Plot, error) {
	s, err := NewSurface(width, height, dpi, color.White)
	if err != nil {
		return nil, err
	}
	p := &Plot{
		Surface:      s,
		MarkerRadius: DefaultMarkerRadius,
		width:        width,
		height:       height,
		margins:      [4]float64{DefaultMargin, DefaultMargin, DefaultMargin, DefaultMargin},
		data:         labels.Rect{X0: 0.0, Y0: 0.0, X1: 1.0, Y1: 1.0},
	}
	p.updateFrame()
	return p, nil
}

// SetDataRange sets the data range shown in the plotting area. It must be set before drawing.
func (p *Plot) SetDataRange(xmin, xmax, ymin, ymax float64) {
	p.data = labels.Rect{X0: xmin, Y0: ymin, X1: xmax, Y1: ymax}
	p.updateFrame()
}

// FitDataRange sets the data range to the span of xs and ys, padded by a fraction pad of the span on every side.
func (p *Plot) FitDataRange(xs, ys []float64, pad float64) {
	if len(xs) == 0 || len(ys) == 0 {
		return
	}
	xmin, xmax := floats.Min(xs), floats.Max(xs)
	ymin, ymax := floats.Min(ys), floats.Max(ys)
	dx, dy := pad*(xmax-xmin), pad*(ymax-ymin)
	if dx == 0.0 {
		dx = 1.0
	}
	if dy == 0.0 {
		dy = 1.0
	}
	p.SetDataRange(xmin-dx, xmax+dx, ymin-dy, ymax+dy)
}

// SetMargins sets the margins in millimeters between the canvas edges and the plotting area. It must be set before drawing.
func (p *Plot) SetMargins(left, bottom, right, top float64) {
	p.margins = [4]float64{left, bottom, right, top}
	p.updateFrame()
}

// Area returns the plotting area in millimeters.
func (p *Plot) Area() canvas.Rect {
	return canvas.Rect{X0: p.margins[0], Y0: p.margins[1], X1: p.width - p.margins[2], Y1: p.height - p.margins[3]}
}

func (p *Plot) updateFrame() {
	area := p.Area()
	lo := p.ToDevice(canvas.Point{X: area.X0, Y: area.Y0})
	hi := p.ToDevice(canvas.Point{X: area.X1, Y: area.Y1})
	device := labels.Rect{X0: lo.X, Y0: lo.Y, X1: hi.X, Y1: hi.Y}
	p.SetFrame(device, labels.NewAffine(p.data, device))
}

// canvasPoint converts a data point to canvas coordinates.
func (p *Plot) canvasPoint(x, y float64) canvas.Point {
	return p.FromDevice(p.transform.ToDevice(labels.Point{X: x, Y: y}))
}

func points(xs, ys []float64) ([]labels.Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("got %d x values and %d y values", len(xs), len(ys))
	}
	pts := make([]labels.Point, len(xs))
	for i := range xs {
		pts[i] = labels.Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}

// Scatter draws a scatter series. Colors holds no color (black), one color for all points, or one color per point.
func (p *Plot) Scatter(xs, ys []float64, colors []color.Color) error {
	pts, err := points(xs, ys)
	if err != nil {
		return err
	}
	s := labels.Series{Kind: labels.ScatterMarks, Points: pts, Colors: colors}

	marker := canvas.Circle(p.MarkerRadius)
	p.ctx.Push()
	p.ctx.SetStrokeColor(canvas.Transparent)
	for i, pt := range pts {
		col := s.Color(i)
		if col == nil {
			col = color.Black
		}
		q := p.canvasPoint(pt.X, pt.Y)
		p.ctx.SetFillColor(col)
		p.ctx.DrawPath(q.X, q.Y, marker)
	}
	p.ctx.Pop()

	p.series = append(p.series, s)
	p.Changed()
	return nil
}

// Line draws a line series with a label that is shown by side labels.
func (p *Plot) Line(xs, ys []float64, col color.Color, label string) error {
	pts, err := points(xs, ys)
	if err != nil {
		return err
	} else if col == nil {
		col = color.Black
	}

	if 0 < len(pts) {
		path := &canvas.Path{}
		for i, pt := range pts {
			q := p.canvasPoint(pt.X, pt.Y)
			if i == 0 {
				path.MoveTo(q.X, q.Y)
			} else {
				path.LineTo(q.X, q.Y)
			}
		}
		p.ctx.Push()
		p.ctx.SetFillColor(canvas.Transparent)
		p.ctx.SetStrokeColor(col)
		p.ctx.SetStrokeWidth(2.0 * p.LineWidth)
		p.ctx.DrawPath(0.0, 0.0, path)
		p.ctx.Pop()
	}

	p.series = append(p.series, labels.Series{Kind: labels.LineMarks, Label: label, Points: pts, Colors: []color.Color{col}})
	p.Changed()
	return nil
}

// Frame draws the outline of the plotting area.
func (p *Plot) Frame() {
	area := p.Area()
	p.ctx.Push()
	p.ctx.SetFillColor(canvas.Transparent)
	p.ctx.SetStrokeColor(color.Black)
	p.ctx.SetStrokeWidth(p.LineWidth)
	p.ctx.DrawPath(area.X0, area.Y0, canvas.Rectangle(area.W(), area.H()))
	p.ctx.Pop()
	p.Changed()
}

// Series returns the first series of the given kind.
func (p *Plot) Series(kind labels.MarkKind) (labels.Series, error) {
	for _, s := range p.series {
		if s.Kind == kind {
			return s, nil
		}
	}
	return labels.Series{}, labels.ErrNoMatchingSeries
}

// LineSeries returns all line series in drawing order.
func (p *Plot) LineSeries() ([]labels.Series, error) {
	series := []labels.Series{}
	for _, s := range p.series {
		if s.Kind == labels.LineMarks {
			series = append(series, s)
		}
	}
	return series, nil
}

var (
	_ labels.Chart     = (*Plot)(nil)
	_ labels.LineChart = (*Plot)(nil)
)
