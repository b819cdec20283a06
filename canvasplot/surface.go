package canvasplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/labels"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoFont is returned when text is measured or drawn on a surface without a font.
var ErrNoFont = errors.New("no font face")

// Defaults of a surface. Lengths are in millimeters and font sizes in points.
const (
	DefaultFontSize  = 9.0
	DefaultLineWidth = 0.25
	ConnectorGap     = 0.5
)

// Surface is a canvas that can be rasterized for label placement and annotated with labels. Device coordinates are pixels at the surface's DPI with the y-axis upwards, the canvas uses millimeters. Plots own the surface and set its plotting area and transform with SetFrame.
type Surface struct {
	Canvas    *canvas.Canvas
	DPI       float64
	LineWidth float64

	ctx        *canvas.Context
	family     *canvas.FontFamily
	fontSize   float64
	background color.Color

	area      labels.Rect
	transform labels.Transform

	version int
	cache   *labels.OccupancyCache
}

// NewSurface returns a surface of width and height in millimeters filled with background, using the Go font.
func NewSurface(width, height, dpi float64, background color.Color) (*Surface, error) {
	if dpi <= 0.0 {
		dpi = labels.DefaultDPI
	}
	family := canvas.NewFontFamily("goregular")
	if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
	}

	c := canvas.New(width, height)
	s := &Surface{
		Canvas:     c,
		DPI:        dpi,
		LineWidth:  DefaultLineWidth,
		ctx:        canvas.NewContext(c),
		family:     family,
		fontSize:   DefaultFontSize,
		background: background,
		transform:  labels.Identity,
	}
	if background != nil {
		s.ctx.SetFillColor(background)
		s.ctx.SetStrokeColor(canvas.Transparent)
		s.ctx.DrawPath(0.0, 0.0, canvas.Rectangle(width, height))
	}
	s.area = labels.Rect{X0: 0.0, Y0: 0.0, X1: s.px(width), Y1: s.px(height)}
	return s, nil
}

// SetFont sets the font family and size in points used for labels. A nil family removes the font.
func (s *Surface) SetFont(family *canvas.FontFamily, size float64) {
	s.family = family
	s.fontSize = size
}

// SetFontSize sets the font size in points used for labels.
func (s *Surface) SetFontSize(size float64) {
	s.fontSize = size
}

// SetFrame sets the plotting area in device space and the transform from data to device space.
func (s *Surface) SetFrame(area labels.Rect, transform labels.Transform) {
	s.area = area
	s.transform = transform
}

// Context returns the drawing context of the canvas. Callers must call Changed after drawing.
func (s *Surface) Context() *canvas.Context {
	return s.ctx
}

// Attach makes the surface invalidate its snapshot in cache whenever it is drawn upon.
func (s *Surface) Attach(cache *labels.OccupancyCache) {
	s.cache = cache
}

// Changed marks the surface as redrawn.
func (s *Surface) Changed() {
	if s.cache != nil {
		s.cache.Invalidate(s.SurfaceKey())
	}
	s.version++
}

type surfaceKey struct {
	s       *Surface
	version int
}

// SurfaceKey identifies the surface in its current state.
func (s *Surface) SurfaceKey() interface{} {
	return surfaceKey{s, s.version}
}

func (s *Surface) dpmm() float64 {
	return s.DPI / 25.4
}

func (s *Surface) px(mm float64) float64 {
	return mm * s.dpmm()
}

// ToDevice converts canvas coordinates in millimeters to device coordinates, which are the centers of pixels.
func (s *Surface) ToDevice(p canvas.Point) labels.Point {
	return p.Mul(s.dpmm()).Sub(canvas.Point{X: 0.5, Y: 0.5})
}

// FromDevice converts device coordinates to canvas coordinates in millimeters.
func (s *Surface) FromDevice(p labels.Point) canvas.Point {
	return p.Add(canvas.Point{X: 0.5, Y: 0.5}).Mul(1.0 / s.dpmm())
}

// Capture rasterizes the canvas. A surface without background is transparent.
func (s *Surface) Capture() (*labels.Capture, error) {
	img := rasterizer.Draw(s.Canvas, canvas.DPI(s.DPI), canvas.DefaultColorSpace)
	background := s.background
	if background == nil {
		background = canvas.Transparent
	}
	return &labels.Capture{
		Image:      img,
		Background: background,
		PlotArea:   s.area,
		Transform:  s.transform,
		DPI:        s.DPI,
	}, nil
}

func (s *Surface) text(str string, col color.Color, halign canvas.TextAlign) (*canvas.Text, error) {
	if s.family == nil {
		return nil, ErrNoFont
	}
	if col == nil {
		col = color.Black
	}
	face := s.family.Face(s.fontSize, col, canvas.FontRegular, canvas.FontNormal)
	return canvas.NewTextLine(face, str, halign), nil
}

// MeasureText returns the bounds in device space of str as drawn by DrawLabel with its first baseline at the origin.
func (s *Surface) MeasureText(str string) (labels.Rect, error) {
	t, err := s.text(str, nil, canvas.Center)
	if err != nil {
		return labels.Rect{}, err
	}
	return labels.Rect(t.Bounds()).Scale(s.dpmm()), nil
}

// DrawLabel draws the label text centered on its position, and a line from its anchor to the label box when it has a connector.
func (s *Surface) DrawLabel(label labels.PlacedLabel) error {
	col := label.TextColor
	if col == nil {
		col = label.Color
	}
	t, err := s.text(label.Text, col, canvas.Center)
	if err != nil {
		return err
	}

	if label.Connector {
		if end, ok := boxEdge(label.Box.Pad(s.px(ConnectorGap)), label.Anchor); ok {
			s.line(s.FromDevice(label.Anchor), s.FromDevice(end), label.Color, false)
		}
	}
	b := t.Bounds()
	pos := s.FromDevice(label.Position)
	s.ctx.DrawText(pos.X-(b.X0+b.X1)/2.0, pos.Y-(b.Y0+b.Y1)/2.0, t)
	s.Changed()
	return nil
}

// DrawSideLabel draws the label text left-aligned and vertically centered on its position, with a dashed line from the end of its series.
func (s *Surface) DrawSideLabel(label labels.SideLabel) error {
	t, err := s.text(label.Text, label.Color, canvas.Left)
	if err != nil {
		return err
	}

	gap := s.px(ConnectorGap)
	if label.End.X < label.Position.X-gap {
		s.line(s.FromDevice(label.End), s.FromDevice(labels.Point{X: label.Position.X - gap, Y: label.Position.Y}), label.Color, true)
	}
	b := t.Bounds()
	pos := s.FromDevice(label.Position)
	s.ctx.DrawText(pos.X-b.X0, pos.Y-(b.Y0+b.Y1)/2.0, t)
	s.Changed()
	return nil
}

func (s *Surface) line(a, b canvas.Point, col color.Color, dashed bool) {
	if col == nil {
		col = color.Black
	}
	p := &canvas.Path{}
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)

	s.ctx.Push()
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(col)
	s.ctx.SetStrokeWidth(s.LineWidth)
	if dashed {
		s.ctx.SetDashes(0.0, 4.0*s.LineWidth, 4.0*s.LineWidth)
	}
	s.ctx.DrawPath(0.0, 0.0, p)
	s.ctx.Pop()
}

// WriteFile writes the canvas to filename in the format given by its extension, rasterizing at the surface's DPI.
func (s *Surface) WriteFile(filename string) error {
	return renderers.Write(filename, s.Canvas, canvas.DPI(s.DPI))
}

// boxEdge returns where the line from the center of box to p leaves the box, and false when p lies inside the box.
func boxEdge(box labels.Rect, p labels.Point) (labels.Point, bool) {
	c := box.Center()
	d := p.Sub(c)
	t := math.Inf(1)
	if d.X != 0.0 {
		t = math.Min(t, box.W()/2.0/math.Abs(d.X))
	}
	if d.Y != 0.0 {
		t = math.Min(t, box.H()/2.0/math.Abs(d.Y))
	}
	if 1.0 <= t {
		return labels.Point{}, false
	}
	return c.Add(d.Mul(t)), true
}
