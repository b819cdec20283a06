package labels

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGrid(t *testing.T) {
	test.T(t, Grid(Rect{0, 0, 2, 4}, 3), []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
		{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4},
	})
	test.T(t, len(Grid(Rect{0, 0, 1, 1}, DefaultBroadGridSize)), 400)
	test.T(t, Grid(Rect{0, 0, 2, 4}, 1), []Point{{X: 1, Y: 2}})
	test.T(t, len(Grid(Rect{0, 0, 2, 4}, 0)), 0)
	test.T(t, len(Grid(Rect{0, 0, -1, 4}, 6)), 0)
}

func TestFilter(t *testing.T) {
	cands := Grid(Rect{0, 0, 100, 100}, 11)

	// nothing in the way
	test.T(t, Filter(cands, 10, 10, nil, nil), cands)
	test.T(t, len(Filter(nil, 10, 10, nil, nil)), 0)

	// an obstacle at the center blocks all centers within half a label of it
	obstacle := Rect{45, 45, 55, 55}
	valid := Filter(cands, 10, 10, nil, []Rect{obstacle})
	test.T(t, len(valid), len(cands)-9)
	for _, c := range valid {
		test.That(t, !RectFromCenter(c, 10, 10).Overlaps(obstacle), c)
	}

	// occupied pixels block all centers whose box covers them
	occ := NewOccupancyFromPoints([]Point{{X: 0, Y: 0}, {X: 100, Y: 100}})
	valid = Filter(cands, 20, 20, occ, nil)
	test.T(t, len(valid), len(cands)-8)
	for _, c := range valid {
		test.That(t, !occ.Intersects(RectFromCenter(c, 20, 20)), c)
	}
}

func TestFilterSubset(t *testing.T) {
	cands := Grid(Rect{-50, -50, 50, 50}, 20)
	occ := NewOccupancyFromPoints([]Point{{X: 1, Y: 2}, {X: -30, Y: 20}, {X: 40, Y: -40}})
	obstacles := []Rect{{-10, -10, 0, 5}, {20, 20, 25, 45}}
	valid := Filter(cands, 12, 6, occ, obstacles)

	in := map[Point]bool{}
	for _, c := range cands {
		in[c] = true
	}
	test.That(t, len(valid) < len(cands))
	for _, c := range valid {
		test.That(t, in[c], c)
	}
}

func TestScorer(t *testing.T) {
	scorer := Scorer{
		Repulsion:  NewIsotropicGaussian(Point{X: 0, Y: 0}, 100.0),
		Attraction: NewIsotropicGaussian(Point{X: 20, Y: 0}, 100.0),
	}
	best, ok := scorer.Best([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}})
	test.That(t, ok)
	test.T(t, best, Point{X: 20, Y: 0})

	_, ok = scorer.Best(nil)
	test.That(t, !ok)

	// ties go to the first candidate
	scorer = Scorer{
		Repulsion:  NewIsotropicGaussian(Point{X: 0, Y: 0}, 1.0),
		Attraction: NewIsotropicGaussian(Point{X: 0, Y: 0}, 1.0),
	}
	best, ok = scorer.Best([]Point{{X: 0, Y: 5}, {X: 5, Y: 0}, {X: 0, Y: -5}})
	test.That(t, ok)
	test.T(t, best, Point{X: 0, Y: 5})
}
