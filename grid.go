package labels

import "gonum.org/v1/gonum/floats"

// Default candidate grid sizes, the broad one covers a whole region and the local one the window around a single anchor.
const (
	DefaultBroadGridSize = 20
	DefaultLocalGridSize = 6
)

// Grid returns an n×n lattice of points spanning r including its edges, rows of increasing y with x increasing within a row. It returns no points for an empty region or n < 1, and the center of r for n = 1.
func Grid(r Rect, n int) []Point {
	if r.Empty() || n < 1 {
		return nil
	} else if n == 1 {
		return []Point{r.Center()}
	}

	xs := floats.Span(make([]float64, n), r.X0, r.X1)
	ys := floats.Span(make([]float64, n), r.Y0, r.Y1)
	pts := make([]Point, 0, n*n)
	for _, y := range ys {
		for _, x := range xs {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}
