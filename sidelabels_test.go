package labels

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestSpreadEnds(t *testing.T) {
	ends := []Point{{X: 10, Y: 0}, {X: 20, Y: 1}, {X: 30, Y: 2}}
	pts := SpreadEnds(ends, []float64{4, 4, 4}, 50)
	test.T(t, len(pts), 3)
	for _, p := range pts {
		test.Float(t, p.X, 50.0)
	}
	test.Float(t, pts[0].Y, -3.0)
	test.Float(t, pts[1].Y, 1.0)
	test.Float(t, pts[2].Y, 5.0)

	pts = SpreadEnds([]Point{{X: 0, Y: 0}, {X: 0, Y: 100}}, []float64{10, 10}, 5)
	test.T(t, pts, []Point{{X: 5, Y: 0}, {X: 5, Y: 100}})
}

func TestLineLabels(t *testing.T) {
	c := newFakeChart(400, 300, 20)
	red := color.RGBA{255, 0, 0, 255}
	c.series = []Series{
		{Kind: LineMarks, Label: "first", Points: []Point{{X: 20, Y: 20}, {X: 200, Y: 150}}, Colors: []color.Color{red}},
		{Kind: ScatterMarks, Label: "dots", Points: []Point{{X: 50, Y: 50}}},
		{Kind: LineMarks, Label: "second", Points: []Point{{X: 20, Y: 40}, {X: 300, Y: 152}}},
		{Kind: LineMarks, Points: []Point{{X: 20, Y: 60}, {X: 250, Y: 100}}},
		{Kind: LineMarks, Label: "empty"},
	}

	side, err := LineLabels(c, nil)
	test.Error(t, err)
	test.T(t, len(side), 2)
	test.T(t, c.side, side)

	test.T(t, side[0].Index, 0)
	test.String(t, side[0].Text, "first")
	test.T(t, side[0].Color, color.Color(red))
	test.T(t, side[0].End, Point{X: 200, Y: 150})
	test.T(t, side[1].Index, 1)
	test.String(t, side[1].Text, "second")
	test.T(t, side[1].Color, color.Color(color.Black))

	for _, label := range side {
		test.Float(t, label.Position.X, SideLabelOffset*300.0)
	}
	// heights are 10, so the labels are pushed apart to a gap of 10
	test.Float(t, side[1].Position.Y-side[0].Position.Y, 10.0)
	test.Float(t, side[0].Position.Y+side[1].Position.Y, 302.0)
}

func TestLineLabelsNone(t *testing.T) {
	c := newFakeChart(100, 100, 10)
	side, err := LineLabels(c, nil)
	test.Error(t, err)
	test.T(t, len(side), 0)
	test.T(t, len(c.side), 0)
}
