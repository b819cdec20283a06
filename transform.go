package labels

// Transform converts between data space and device space.
type Transform interface {
	ToDevice(Point) Point
	ToData(Point) Point
}

// Affine is an axis-aligned affine transform from data space to device space, ie. device = data*Scale + Offset for each axis. It covers linear axes of a chart.
type Affine struct {
	Scale, Offset Point
}

// Identity is the transform for charts whose data coordinates already are device coordinates.
var Identity = Affine{Scale: Point{X: 1.0, Y: 1.0}}

// NewAffine returns the transform that maps the data rectangle onto the device rectangle. An axis along which either rectangle is collapsed keeps a unit scale so that the transform stays invertible.
func NewAffine(data, device Rect) Affine {
	sx, sy := 1.0, 1.0
	if data.W() != 0.0 && device.W() != 0.0 {
		sx = device.W() / data.W()
	}
	if data.H() != 0.0 && device.H() != 0.0 {
		sy = device.H() / data.H()
	}
	return Affine{
		Scale:  Point{X: sx, Y: sy},
		Offset: Point{X: device.X0 - data.X0*sx, Y: device.Y0 - data.Y0*sy},
	}
}

// ToDevice maps a data-space point to device space.
func (t Affine) ToDevice(p Point) Point {
	return Point{X: p.X*t.Scale.X + t.Offset.X, Y: p.Y*t.Scale.Y + t.Offset.Y}
}

// ToData maps a device-space point to data space.
func (t Affine) ToData(p Point) Point {
	return Point{X: (p.X - t.Offset.X) / t.Scale.X, Y: (p.Y - t.Offset.Y) / t.Scale.Y}
}
