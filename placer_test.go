package labels

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func cloud(center Point, n int, spread float64) []Point {
	pts := []Point{}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, center.Add(Point{X: spread * float64(i-n/2), Y: spread * float64(j-n/2)}))
		}
	}
	return pts
}

// checkPlacement verifies that no two placed labels overlap and that no label covers an occupied point.
func checkPlacement(t *testing.T, res *Result, occ *Occupancy) {
	t.Helper()
	for i, a := range res.Labels {
		test.That(t, !occ.Intersects(a.Box), fmt.Sprintf("label %q covers ink", a.Text))
		test.That(t, a.Box.Center().Equals(a.Position), "box not centered on position")
		for _, b := range res.Labels[i+1:] {
			test.That(t, !a.Box.Overlaps(b.Box), fmt.Sprintf("labels %q and %q overlap", a.Text, b.Text))
		}
	}
}

func TestPlaceEmpty(t *testing.T) {
	res, err := Place(Scene{}, nil, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 0)
	test.T(t, len(res.Dropped), 0)
}

func TestPlaceFarAnchor(t *testing.T) {
	anchor := Point{X: 800, Y: 800}
	scene := Scene{
		Data:     append(cloud(Point{X: 400, Y: 400}, 5, 10), anchor),
		PlotArea: Rect{0, 0, 1000, 1000},
		DPI:      100.0,
	}
	res, err := Place(scene, []LabelRequest{{Anchor: anchor, Text: "far away"}}, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 1)

	label := res.Labels[0]
	test.String(t, label.Text, "far away")
	test.That(t, label.Position.Sub(anchor).Length() <= DefaultOptions.MaxAnnotationDistance*scene.DPI)
	test.T(t, label.Anchor, anchor)
	test.T(t, label.DataPosition, label.Position)
	test.Float(t, label.Distance, label.Position.Sub(anchor).Length()/scene.DPI)
	test.T(t, label.Connector, 0.0 < label.Distance)
	test.T(t, label.Color, color.Color(color.Black))

	// the label box and the connector proxies are obstacles
	test.T(t, len(res.Obstacles), 1+DefaultOptions.ConnectorSamples)
	test.T(t, res.Obstacles[0], label.Box)
	test.That(t, res.Obstacles[1].Center().Equals(label.Position))
	test.That(t, res.Obstacles[len(res.Obstacles)-1].Center().Equals(anchor))
}

func TestPlaceNarrowerWrap(t *testing.T) {
	m := &monoMeasurer{advance: 6, lineHeight: 10}
	scene := Scene{
		PlotArea: Rect{0, 0, 150, 150},
		DPI:      100.0,
	}
	text := "aaaa bbbb cccc dddd eeee ffff gggg"
	res, err := Place(scene, []LabelRequest{{Anchor: Point{X: 75, Y: 75}, Text: text}}, m, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 1)
	test.T(t, len(res.Dropped), 0)
	test.T(t, len(m.calls), 3)
	test.String(t, m.calls[0], text)

	label := res.Labels[0]
	lines := strings.Split(label.Text, "\n")
	test.That(t, 1 < len(lines))
	for _, line := range lines {
		test.That(t, len(line) <= 15, line)
	}
	test.That(t, label.Box.X0 >= 0.0 && label.Box.X1 <= 150.0)
}

func TestPlaceDropped(t *testing.T) {
	scene := Scene{
		PlotArea: Rect{0, 0, 20, 20},
		DPI:      100.0,
	}
	reqs := []LabelRequest{
		{Anchor: Point{X: 10, Y: 10}, Text: "much too wide to fit"},
		{Anchor: Point{X: 12, Y: 12}, Text: ""},
	}
	res, err := Place(scene, reqs, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 0)
	test.T(t, len(res.Dropped), 2)
}

func TestPlaceIdenticalAnchors(t *testing.T) {
	anchor := Point{X: 500, Y: 500}
	scene := Scene{
		Data:     append(cloud(Point{X: 300, Y: 300}, 4, 20), anchor, anchor),
		PlotArea: Rect{0, 0, 1000, 1000},
		DPI:      100.0,
	}
	reqs := []LabelRequest{
		{Anchor: anchor, Text: "first"},
		{Anchor: anchor, Text: "second"},
	}
	res, err := Place(scene, reqs, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 2)
	test.T(t, res.Labels[0].Index, 0)
	test.T(t, res.Labels[1].Index, 1)
	test.That(t, !res.Labels[0].Box.Overlaps(res.Labels[1].Box))
	test.That(t, res.Labels[0].Position != res.Labels[1].Position)
}

func TestPlaceOccupancy(t *testing.T) {
	// ink everywhere around the anchor except above it
	ink := []Point{}
	for x := 400.0; x <= 600.0; x += 2.0 {
		for y := 400.0; y <= 520.0; y += 2.0 {
			ink = append(ink, Point{X: x, Y: y})
		}
	}
	occ := NewOccupancyFromPoints(ink)
	scene := Scene{
		Data:      []Point{{X: 500, Y: 500}, {X: 100, Y: 100}, {X: 900, Y: 100}},
		PlotArea:  Rect{0, 0, 1000, 1000},
		Occupancy: occ,
		DPI:       100.0,
	}
	res, err := Place(scene, []LabelRequest{{Anchor: Point{X: 500, Y: 500}, Text: "label"}}, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 1)
	test.That(t, 520.0 < res.Labels[0].Box.Y0)
	checkPlacement(t, res, occ)
}

func TestPlaceConnector(t *testing.T) {
	scene := Scene{
		Data:     cloud(Point{X: 500, Y: 500}, 5, 30),
		PlotArea: Rect{0, 0, 1000, 1000},
		DPI:      100.0,
	}
	opts := DefaultOptions
	opts.MinConnectorLength = 10.0
	res, err := Place(scene, []LabelRequest{{Anchor: Point{X: 440, Y: 440}, Text: "a"}}, &monoMeasurer{advance: 6, lineHeight: 10}, opts)
	test.Error(t, err)
	test.T(t, len(res.Labels), 1)
	test.That(t, !res.Labels[0].Connector)
}

func TestPlaceTextColor(t *testing.T) {
	scene := Scene{
		PlotArea:   Rect{0, 0, 1000, 1000},
		Background: color.Black,
		DPI:        100.0,
	}
	res, err := Place(scene, []LabelRequest{{Anchor: Point{X: 500, Y: 500}, Text: "a", Color: color.RGBA{0, 0, 64, 255}}}, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels), 1)
	test.T(t, res.Labels[0].Color, color.Color(color.RGBA{0, 0, 64, 255}))
	test.That(t, res.Labels[0].TextColor != res.Labels[0].Color)
}

type failingMeasurer struct{}

var errMeasure = errors.New("no renderer")

func (failingMeasurer) MeasureText(string) (Rect, error) {
	return Rect{}, errMeasure
}

func TestPlaceMeasureError(t *testing.T) {
	_, err := Place(Scene{}, []LabelRequest{{Text: "a"}}, failingMeasurer{}, DefaultOptions)
	test.That(t, errors.Is(err, errMeasure))
}

func TestPlaceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := []Point{}
	reqs := []LabelRequest{}
	for i := 0; i < 40; i++ {
		p := Point{X: 500 + 150*rng.NormFloat64(), Y: 400 + 100*rng.NormFloat64()}
		data = append(data, p)
		reqs = append(reqs, LabelRequest{Anchor: p, Text: fmt.Sprintf("point %d", i)})
	}
	ink := []Point{}
	for _, p := range data {
		for dx := -2.0; dx <= 2.0; dx++ {
			for dy := -2.0; dy <= 2.0; dy++ {
				ink = append(ink, p.Add(Point{X: dx, Y: dy}))
			}
		}
	}
	occ := NewOccupancyFromPoints(ink)
	scene := Scene{
		Data:      data,
		Transform: NewAffine(Rect{0, 0, 1000, 800}, Rect{0, 0, 1000, 800}),
		PlotArea:  Rect{0, 0, 1000, 800},
		Occupancy: occ,
		DPI:       100.0,
	}

	res, err := Place(scene, reqs, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, len(res.Labels)+len(res.Dropped), len(reqs))
	test.That(t, 0 < len(res.Labels))
	checkPlacement(t, res, occ)
	for _, label := range res.Labels {
		test.That(t, label.Position.Sub(label.Anchor).Length() <= math.Sqrt2*DefaultOptions.MaxAnnotationDistance*scene.DPI/2.0+1e-9)
	}

	// identical input gives identical output
	res2, err := Place(scene, reqs, &monoMeasurer{advance: 6, lineHeight: 10}, DefaultOptions)
	test.Error(t, err)
	test.T(t, res2, res)
}

func TestSearchRegion(t *testing.T) {
	region, ok := SearchRegion(Point{X: 10, Y: 10}, 40, 10, 10, Rect{0, 0, 100, 100})
	test.That(t, ok)
	test.T(t, region, Rect{5, 5, 30, 30})

	_, ok = SearchRegion(Point{X: 10, Y: 10}, 40, 200, 10, Rect{0, 0, 100, 100})
	test.That(t, !ok)
}
