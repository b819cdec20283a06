package labels

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// DefaultDPI is the display resolution assumed when a scene does not specify one.
const DefaultDPI = 100.0

// Options are the settings of the scatter label placer. Lengths are in inches or points so that placement is independent of the display resolution.
type Options struct {
	// GridSize is the number of candidate positions along each axis of the search window.
	GridSize int `yaml:"grid_size"`

	// MaxAnnotationDistance is the side length in inches of the square search window around an anchor.
	MaxAnnotationDistance float64 `yaml:"max_annotation_distance"`

	// MinConnectorLength is the distance in inches between a label and its anchor above which a connector is drawn.
	MinConnectorLength float64 `yaml:"min_connector_length"`

	// TextPadding is the padding in points around the measured text.
	TextPadding float64 `yaml:"text_padding"`

	// ConnectorSamples is the number of obstacle boxes placed along each connector.
	ConnectorSamples int `yaml:"connector_samples"`

	// ConnectorProxySize is the side length in inches of the obstacle boxes along a connector.
	ConnectorProxySize float64 `yaml:"connector_proxy_size"`

	// WrapWidths are the wrap widths in columns tried in turn, see Wrap.
	WrapWidths []int `yaml:"wrap_widths"`

	// AttractionScale scales the variance, in pixels squared per DPI, of the attraction towards the anchor.
	AttractionScale float64 `yaml:"attraction_scale"`
}

// DefaultOptions are the default placer settings.
var DefaultOptions = Options{
	GridSize:              DefaultLocalGridSize,
	MaxAnnotationDistance: 1.2,
	MinConnectorLength:    0.0,
	TextPadding:           2.0,
	ConnectorSamples:      6,
	ConnectorProxySize:    0.01,
	WrapWidths:            DefaultWrapWidths,
	AttractionScale:       1.0,
}

// normalize replaces unset fields by their defaults. MinConnectorLength and TextPadding are used as given since zero is meaningful.
func (opts Options) normalize() Options {
	if opts.GridSize < 1 {
		opts.GridSize = DefaultOptions.GridSize
	}
	if opts.MaxAnnotationDistance <= 0.0 {
		opts.MaxAnnotationDistance = DefaultOptions.MaxAnnotationDistance
	}
	if opts.ConnectorSamples < 1 {
		opts.ConnectorSamples = DefaultOptions.ConnectorSamples
	}
	if opts.ConnectorProxySize <= 0.0 {
		opts.ConnectorProxySize = DefaultOptions.ConnectorProxySize
	}
	if len(opts.WrapWidths) == 0 {
		opts.WrapWidths = DefaultOptions.WrapWidths
	}
	if opts.AttractionScale <= 0.0 {
		opts.AttractionScale = DefaultOptions.AttractionScale
	}
	return opts
}

////////////////////////////////////////////////////////////////

// TextMeasurer measures the bounding box in device space of text as it would be drawn, without drawing it.
type TextMeasurer interface {
	MeasureText(text string) (Rect, error)
}

// LabelRequest is a label to be placed next to its anchor, which is in data space.
type LabelRequest struct {
	Anchor Point
	Text   string
	Color  color.Color
}

// PlacedLabel is a label at its final position. Positions and boxes are in device space.
type PlacedLabel struct {
	Index        int    // index of the request
	Text         string // text as wrapped for placement
	Box          Rect
	Position     Point // center of Box
	DataPosition Point
	Anchor       Point
	DataAnchor   Point
	Distance     float64 // between anchor and position in inches
	Connector    bool
	Color        color.Color
	TextColor    color.Color
}

// Scene is everything the placer needs to know about the chart.
type Scene struct {
	Data       []Point // all data points in data space, defaults to the anchors
	Transform  Transform
	PlotArea   Rect // in device space, the zero rectangle means unbounded
	Occupancy  *Occupancy
	Background color.Color // used to pick text colors when set
	DPI        float64
}

// Result holds the placed labels in placement order, the indices of the requests that could not be placed, and all obstacles that were accumulated.
type Result struct {
	Labels    []PlacedLabel
	Dropped   []int
	Obstacles []Rect
}

// Order returns the indices of the anchors sorted by descending squared Mahalanobis distance to the distribution of data, ties are kept in input order.
func Order(anchors, data []Point) []int {
	g := FitGaussian(data)
	dists := make([]float64, len(anchors))
	order := make([]int, len(anchors))
	for i, anchor := range anchors {
		dists[i] = g.SqDist(anchor)
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dists[order[i]] > dists[order[j]]
	})
	return order
}

// SearchRegion returns the region in which the center of a label of size (w,h) may lie: the square window of side length size centered on the anchor, clipped to the plotting area shrunk by the label size. It returns false when no such region exists.
func SearchRegion(anchor Point, size, w, h float64, plotArea Rect) (Rect, bool) {
	window := RectFromCenter(anchor, size, size)
	return window.And(plotArea.Shrink(w, h))
}

// Place places the labels one at a time, starting with the anchor farthest from the data and working inwards. Every label is tried at the wrap widths in turn and dropped if none fits. Placed labels and their connectors become obstacles for the labels that follow. Only errors of the text measurer are returned.
func Place(scene Scene, reqs []LabelRequest, measurer TextMeasurer, opts Options) (*Result, error) {
	res := &Result{}
	if len(reqs) == 0 {
		return res, nil
	}
	opts = opts.normalize()

	transform := scene.Transform
	if transform == nil {
		transform = Identity
	}
	dpi := scene.DPI
	if dpi <= 0.0 {
		dpi = DefaultDPI
	}
	plotArea := scene.PlotArea
	if plotArea == (Rect{}) {
		plotArea = Rect{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}
	}

	anchors := make([]Point, len(reqs))
	for i, req := range reqs {
		anchors[i] = req.Anchor
	}
	data := scene.Data
	if len(data) == 0 {
		data = anchors
	}
	device := make([]Point, len(data))
	for i, p := range data {
		device[i] = transform.ToDevice(p)
	}
	repulsion := FitGaussian(device)

	padding := opts.TextPadding * dpi / 72.0
	windowSize := opts.MaxAnnotationDistance * dpi
	proxySize := opts.ConnectorProxySize * dpi
	for _, i := range Order(anchors, data) {
		req := reqs[i]
		anchor := transform.ToDevice(req.Anchor)
		scorer := Scorer{
			Repulsion:  repulsion,
			Attraction: NewIsotropicGaussian(anchor, opts.AttractionScale*dpi),
		}

		placed := false
		prevText := ""
		for j, width := range opts.WrapWidths {
			text := Wrap(req.Text, width)
			if text == "" {
				break
			} else if 0 < j && text == prevText {
				continue
			}
			prevText = text

			bounds, err := measurer.MeasureText(text)
			if err != nil {
				return nil, fmt.Errorf("measure label %d: %w", i, err)
			}
			bounds = bounds.Pad(padding)
			w, h := bounds.W(), bounds.H()

			region, ok := SearchRegion(anchor, windowSize, w, h, plotArea)
			if !ok {
				continue
			}
			cands := Filter(Grid(region, opts.GridSize), w, h, scene.Occupancy, res.Obstacles)
			loc, ok := scorer.Best(cands)
			if !ok {
				continue
			}

			label := PlacedLabel{
				Index:        i,
				Text:         text,
				Box:          bounds.Move(loc),
				Position:     loc,
				DataPosition: transform.ToData(loc),
				Anchor:       anchor,
				DataAnchor:   req.Anchor,
				Distance:     anchor.Sub(loc).Length() / dpi,
				Color:        req.Color,
			}
			label.Connector = opts.MinConnectorLength < label.Distance
			if label.Color == nil {
				label.Color = color.Black
			}
			if scene.Background != nil {
				label.TextColor = ContrastWith(label.Color, scene.Background)
			} else {
				label.TextColor = label.Color
			}
			res.Labels = append(res.Labels, label)

			res.Obstacles = append(res.Obstacles, label.Box)
			res.Obstacles = append(res.Obstacles, connectorProxies(loc, anchor, opts.ConnectorSamples, proxySize)...)
			placed = true
			break
		}
		if !placed {
			res.Dropped = append(res.Dropped, i)
		}
	}
	return res, nil
}

// connectorProxies returns n square boxes of side length size evenly spaced on the straight line from a to b, both ends included.
func connectorProxies(a, b Point, n int, size float64) []Rect {
	proxies := make([]Rect, n)
	for j := range proxies {
		t := 0.0
		if 1 < n {
			t = float64(j) / float64(n-1)
		}
		proxies[j] = RectFromCenter(a.Interpolate(b, t), size, size)
	}
	return proxies
}
