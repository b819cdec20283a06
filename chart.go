package labels

import (
	"errors"
	"image/color"
)

// ErrNoMatchingSeries is returned when a chart has no data series of the requested kind.
var ErrNoMatchingSeries = errors.New("no matching series found")

// MarkKind is the kind of marks a data series is drawn with.
type MarkKind int

// MarkKind values.
const (
	ScatterMarks MarkKind = iota
	LineMarks
)

func (kind MarkKind) String() string {
	switch kind {
	case ScatterMarks:
		return "scatter"
	case LineMarks:
		return "line"
	}
	return "unknown"
}

// Series is a data series of a chart in data space. Colors holds either no colors, one color for all points, or one color per point.
type Series struct {
	Kind   MarkKind
	Label  string
	Points []Point
	Colors []color.Color
}

// Color returns the color of the i-th point, or nil if the series has no colors.
func (s Series) Color(i int) color.Color {
	if len(s.Colors) == 0 {
		return nil
	} else if len(s.Colors) == 1 {
		return s.Colors[0]
	}
	return s.Colors[i%len(s.Colors)]
}

// MarkEnumerator finds the data series of a chart. Series returns the first series of the given kind, or ErrNoMatchingSeries if there is none.
type MarkEnumerator interface {
	Series(kind MarkKind) (Series, error)
}

// PixelCapturer captures the rendered chart. SurfaceKey identifies the current state of the rendering surface and is used as the occupancy cache key.
type PixelCapturer interface {
	SurfaceKey() interface{}
	Capture() (*Capture, error)
}

// ConnectorRenderer draws a placed label, and its connector to the anchor if it has one.
type ConnectorRenderer interface {
	DrawLabel(PlacedLabel) error
}

// Chart is a rendered chart that can be annotated with scatter labels.
type Chart interface {
	MarkEnumerator
	PixelCapturer
	TextMeasurer
	ConnectorRenderer
}
