package labels

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"
)

// monoMeasurer measures text set in a monospaced font with the baseline at y=0.
type monoMeasurer struct {
	advance, lineHeight float64
	calls               []string
}

func (m *monoMeasurer) MeasureText(text string) (Rect, error) {
	m.calls = append(m.calls, text)
	lines := strings.Split(text, "\n")
	n := 0
	for _, line := range lines {
		if k := utf8.RuneCountInString(line); n < k {
			n = k
		}
	}
	w := float64(n) * m.advance
	h := float64(len(lines)) * m.lineHeight
	return Rect{-w / 2.0, -h + m.lineHeight/4.0, w / 2.0, m.lineHeight / 4.0}, nil
}

// fakeChart is a chart drawn on a white image by default with its plotting area covering the image minus a margin, data and device space coincide.
type fakeChart struct {
	monoMeasurer
	img        *image.RGBA
	background color.Color
	area       Rect
	series     []Series
	drawn      []PlacedLabel
	side       []SideLabel
	version    int
}

func newFakeChart(w, h int, margin float64) *fakeChart {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return &fakeChart{
		monoMeasurer: monoMeasurer{advance: 6.0, lineHeight: 10.0},
		img:          img,
		background:   color.White,
		area:         Rect{margin, margin, float64(w) - margin, float64(h) - margin},
	}
}

// ink colors the device pixel (x,y).
func (c *fakeChart) ink(x, y int) {
	c.img.Set(x, c.img.Bounds().Dy()-1-y, color.Black)
	c.version++
}

func (c *fakeChart) Series(kind MarkKind) (Series, error) {
	for _, s := range c.series {
		if s.Kind == kind {
			return s, nil
		}
	}
	return Series{}, ErrNoMatchingSeries
}

func (c *fakeChart) LineSeries() ([]Series, error) {
	series := []Series{}
	for _, s := range c.series {
		if s.Kind == LineMarks {
			series = append(series, s)
		}
	}
	return series, nil
}

func (c *fakeChart) SurfaceKey() interface{} {
	return [2]interface{}{c, c.version}
}

func (c *fakeChart) Capture() (*Capture, error) {
	return &Capture{
		Image:      c.img,
		Background: c.background,
		PlotArea:   c.area,
		Transform:  Identity,
		DPI:        100.0,
	}, nil
}

func (c *fakeChart) DrawLabel(label PlacedLabel) error {
	c.drawn = append(c.drawn, label)
	return nil
}

func (c *fakeChart) DrawSideLabel(label SideLabel) error {
	c.side = append(c.side, label)
	return nil
}
