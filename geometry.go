package labels

import (
	"fmt"
	"math"

	"github.com/tdewolff/canvas"
)

// Point is a coordinate in 2D space, either in device space (pixels, y-axis upwards) or in data space.
type Point = canvas.Point

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box that converts to and from canvas.Rect. A valid rectangle has X0 <= X1 and Y0 <= Y1, an inverted rectangle is considered empty.
type Rect canvas.Rect

// RectFromCenter returns the rectangle of width w and height h centered at c.
func RectFromCenter(c Point, w, h float64) Rect {
	return Rect{c.X - w/2.0, c.Y - h/2.0, c.X + w/2.0, c.Y + h/2.0}
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2.0, Y: (r.Y0 + r.Y1) / 2.0}
}

// Empty returns true if the rectangle is inverted along either axis. A rectangle of zero width or height is a line or point and is not empty.
func (r Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0 || math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

// Pad grows the rectangle by d on every side, a negative d shrinks it.
func (r Rect) Pad(d float64) Rect {
	return Rect{r.X0 - d, r.Y0 - d, r.X1 + d, r.Y1 + d}
}

// Expand scales the rectangle around its center by fx horizontally and fy vertically.
func (r Rect) Expand(fx, fy float64) Rect {
	c := r.Center()
	w, h := fx*r.W(), fy*r.H()
	return Rect{c.X - w/2.0, c.Y - h/2.0, c.X + w/2.0, c.Y + h/2.0}
}

// Shrink reduces the width by w and the height by h keeping the center in place. The result is empty when the rectangle is smaller than (w,h).
func (r Rect) Shrink(w, h float64) Rect {
	return Rect{r.X0 + w/2.0, r.Y0 + h/2.0, r.X1 - w/2.0, r.Y1 - h/2.0}
}

// Inflate grows the rectangle by half of w on the left and right and half of h on the top and bottom. A point outside the inflated rectangle is the center of a (w,h) rectangle that does not touch r.
func (r Rect) Inflate(w, h float64) Rect {
	return r.Shrink(-w, -h)
}

// Scale multiplies all coordinates by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{f * r.X0, f * r.Y0, f * r.X1, f * r.Y1}
}

// Translate moves the rectangle by (dx,dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.X0 + dx, r.Y0 + dy, r.X1 + dx, r.Y1 + dy}
}

// Move translates the rectangle so that its center is at p.
func (r Rect) Move(p Point) Rect {
	c := r.Center()
	return r.Translate(p.X-c.X, p.Y-c.Y)
}

// And returns the intersection of R and Q. It returns false if they do not intersect.
func (r Rect) And(q Rect) (Rect, bool) {
	if r.Empty() || q.Empty() {
		return Rect{}, false
	}
	s := Rect{
		math.Max(r.X0, q.X0),
		math.Max(r.Y0, q.Y0),
		math.Min(r.X1, q.X1),
		math.Min(r.Y1, q.Y1),
	}
	if s.Empty() {
		return Rect{}, false
	}
	return s, true
}

// Add returns the smallest rectangle that contains both R and Q. Empty rectangles are ignored.
func (r Rect) Add(q Rect) Rect {
	if q.Empty() {
		return r
	} else if r.Empty() {
		return q
	}
	return Rect{
		math.Min(r.X0, q.X0),
		math.Min(r.Y0, q.Y0),
		math.Max(r.X1, q.X1),
		math.Max(r.Y1, q.Y1),
	}
}

// ContainsPoint returns true if p lies inside or on the boundary of R.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X0 <= p.X && p.X <= r.X1 && r.Y0 <= p.Y && p.Y <= r.Y1
}

// Overlaps returns true if the interiors of R and Q intersect, touching edges do not overlap.
func (r Rect) Overlaps(q Rect) bool {
	return r.X0 < q.X1 && q.X0 < r.X1 && r.Y0 < q.Y1 && q.Y0 < r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}

// Union returns the smallest rectangle containing all rectangles. It returns an empty (inverted) rectangle when no non-empty rectangles are given.
func Union(rs ...Rect) Rect {
	u := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, r := range rs {
		u = u.Add(r)
	}
	return u
}

////////////////////////////////////////////////////////////////

// ContainsPoints returns for each point whether it lies inside or on the boundary of r.
func ContainsPoints(pts []Point, r Rect) []bool {
	in := make([]bool, len(pts))
	for i, p := range pts {
		in[i] = r.ContainsPoint(p)
	}
	return in
}

// IntersectsAny returns for each center whether the box of half-width hw and half-height hh around it contains any of the points.
func IntersectsAny(pts, centers []Point, hw, hh float64) []bool {
	hit := make([]bool, len(centers))
	for i, c := range centers {
		r := Rect{c.X - hw, c.Y - hh, c.X + hw, c.Y + hh}
		for _, p := range pts {
			if r.ContainsPoint(p) {
				hit[i] = true
				break
			}
		}
	}
	return hit
}
