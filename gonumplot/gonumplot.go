// Package gonumplot labels plots of gonum.org/v1/plot, which are drawn onto a canvas through github.com/tdewolff/canvas/renderers.
package gonumplot

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/canvasplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot is a gonum plot on a label surface. Only plotters added through Add or AddLine can be labeled, and the axes must be linear.
type Plot struct {
	*canvasplot.Surface
	Plot *plot.Plot

	plotters []plot.Plotter
	names    map[plot.Plotter]string
}

// New returns a plot of width and height for p, rasterized at dpi.
func New(p *plot.Plot, width, height vg.Length, dpi float64) (*Plot, error) {
	s, err := canvasplot.NewSurface(mm(width), mm(height), dpi, p.BackgroundColor)
	if err != nil {
		return nil, err
	}
	return &Plot{
		Surface: s,
		Plot:    p,
		names:   map[plot.Plotter]string{},
	}, nil
}

func mm(l vg.Length) float64 {
	return float64(l / vg.Millimeter)
}

func canvasPoint(x, y vg.Length) canvas.Point {
	return canvas.Point{X: mm(x), Y: mm(y)}
}

// Add adds plotters to the plot.
func (p *Plot) Add(ps ...plot.Plotter) {
	p.Plot.Add(ps...)
	p.plotters = append(p.plotters, ps...)
}

// AddLine adds a line plotter whose side label is label.
func (p *Plot) AddLine(label string, l *plotter.Line) {
	p.Add(l)
	p.names[l] = label
}

// Draw draws the plot onto the surface and sets the plotting area and transform for labeling.
func (p *Plot) Draw() {
	dc := renderers.NewGonumPlot(p.Canvas)
	p.Plot.Draw(dc)

	da := p.Plot.DataCanvas(dc)
	fx, fy := p.Plot.Transforms(&da)
	toDevice := func(x, y vg.Length) labels.Point {
		return p.ToDevice(canvasPoint(x, y))
	}
	lo := toDevice(da.Min.X, da.Min.Y)
	hi := toDevice(da.Max.X, da.Max.Y)
	data := labels.Rect{X0: p.Plot.X.Min, Y0: p.Plot.Y.Min, X1: p.Plot.X.Max, Y1: p.Plot.Y.Max}
	dlo := toDevice(fx(data.X0), fy(data.Y0))
	dhi := toDevice(fx(data.X1), fy(data.Y1))

	p.SetFrame(labels.Rect{X0: lo.X, Y0: lo.Y, X1: hi.X, Y1: hi.Y}, labels.NewAffine(data, labels.Rect{X0: dlo.X, Y0: dlo.Y, X1: dhi.X, Y1: dhi.Y}))
	p.Changed()
}

func xyPoints(xys plotter.XYs) []labels.Point {
	pts := make([]labels.Point, len(xys))
	for i, xy := range xys {
		pts[i] = labels.Point{X: xy.X, Y: xy.Y}
	}
	return pts
}

func (p *Plot) series(pl plot.Plotter) (labels.Series, bool) {
	switch t := pl.(type) {
	case *plotter.Scatter:
		s := labels.Series{Kind: labels.ScatterMarks, Label: p.names[pl], Points: xyPoints(t.XYs)}
		if t.GlyphStyleFunc != nil {
			s.Colors = make([]color.Color, len(t.XYs))
			for i := range t.XYs {
				s.Colors[i] = t.GlyphStyleFunc(i).Color
			}
		} else if t.GlyphStyle.Color != nil {
			s.Colors = []color.Color{t.GlyphStyle.Color}
		}
		return s, true
	case *plotter.Line:
		s := labels.Series{Kind: labels.LineMarks, Label: p.names[pl], Points: xyPoints(t.XYs)}
		if t.LineStyle.Color != nil {
			s.Colors = []color.Color{t.LineStyle.Color}
		}
		return s, true
	}
	return labels.Series{}, false
}

// Series returns the first scatter or line plotter of the given kind.
func (p *Plot) Series(kind labels.MarkKind) (labels.Series, error) {
	for _, pl := range p.plotters {
		if s, ok := p.series(pl); ok && s.Kind == kind {
			return s, nil
		}
	}
	return labels.Series{}, labels.ErrNoMatchingSeries
}

// LineSeries returns all line plotters in the order they were added.
func (p *Plot) LineSeries() ([]labels.Series, error) {
	series := []labels.Series{}
	for _, pl := range p.plotters {
		if s, ok := p.series(pl); ok && s.Kind == labels.LineMarks {
			series = append(series, s)
		}
	}
	return series, nil
}

var (
	_ labels.Chart     = (*Plot)(nil)
	_ labels.LineChart = (*Plot)(nil)
)
