package labels

import (
	"image"
	"image/color"
	"sort"
)

// DefaultOccupancyPadding is the padding in pixels added to the plotting area so that axis lines on its edge are sampled.
const DefaultOccupancyPadding = 3.0

// Occupancy is an immutable set of device-space points that are covered by ink. Points are kept sorted by x so box queries only visit a slice of them.
type Occupancy struct {
	pts []Point
}

// NewOccupancyFromPoints returns the occupancy of the given device-space points.
func NewOccupancyFromPoints(pts []Point) *Occupancy {
	occ := &Occupancy{pts: make([]Point, len(pts))}
	copy(occ.pts, pts)
	sort.SliceStable(occ.pts, func(i, j int) bool {
		return occ.pts[i].X < occ.pts[j].X
	})
	return occ
}

// NewOccupancy samples the pixels of img that differ from background in any channel and lies within area padded by pad. Pixel (col,row) maps to the device point (col, H-1-row) so that the y-axis points upwards. A nil background is transparent.
func NewOccupancy(img image.Image, background color.Color, area Rect, pad float64) *Occupancy {
	if img == nil {
		return &Occupancy{}
	} else if background == nil {
		background = color.Transparent
	}
	area = area.Pad(pad)
	bounds := img.Bounds()
	h := bounds.Dy()

	pts := []Point{}
	add := func(col, row int) {
		p := Point{X: float64(col), Y: float64(h - 1 - row)}
		if area.ContainsPoint(p) {
			pts = append(pts, p)
		}
	}

	// columns are the outer loop so that points come out sorted by x
	if rgba, ok := img.(*image.RGBA); ok {
		bg := color.RGBAModel.Convert(background).(color.RGBA)
		for col := 0; col < bounds.Dx(); col++ {
			for row := 0; row < h; row++ {
				i := rgba.PixOffset(bounds.Min.X+col, bounds.Min.Y+row)
				pix := rgba.Pix[i : i+4 : i+4]
				if pix[0] != bg.R || pix[1] != bg.G || pix[2] != bg.B || pix[3] != bg.A {
					add(col, row)
				}
			}
		}
	} else {
		br, bg, bb, ba := background.RGBA()
		for col := 0; col < bounds.Dx(); col++ {
			for row := 0; row < h; row++ {
				r, g, b, a := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
				if r != br || g != bg || b != bb || a != ba {
					add(col, row)
				}
			}
		}
	}
	return &Occupancy{pts: pts}
}

// Len returns the number of occupied points.
func (occ *Occupancy) Len() int {
	if occ == nil {
		return 0
	}
	return len(occ.pts)
}

// Points returns the occupied points sorted by x. The slice must not be modified.
func (occ *Occupancy) Points() []Point {
	if occ == nil {
		return nil
	}
	return occ.pts
}

// Intersects returns true if any occupied point lies inside or on the boundary of r.
func (occ *Occupancy) Intersects(r Rect) bool {
	if occ == nil || r.Empty() {
		return false
	}
	i := sort.Search(len(occ.pts), func(i int) bool {
		return r.X0 <= occ.pts[i].X
	})
	for ; i < len(occ.pts) && occ.pts[i].X <= r.X1; i++ {
		if r.Y0 <= occ.pts[i].Y && occ.pts[i].Y <= r.Y1 {
			return true
		}
	}
	return false
}

// IntersectsAny returns for each center whether the box of half-width hw and half-height hh around it contains an occupied point.
func (occ *Occupancy) IntersectsAny(centers []Point, hw, hh float64) []bool {
	hit := make([]bool, len(centers))
	for i, c := range centers {
		hit[i] = occ.Intersects(Rect{c.X - hw, c.Y - hh, c.X + hw, c.Y + hh})
	}
	return hit
}

////////////////////////////////////////////////////////////////

// Capture is a snapshot of a rendered surface as returned by a pixel capturer.
type Capture struct {
	Image      image.Image
	Background color.Color
	PlotArea   Rect // in device space
	Transform  Transform
	DPI        float64
}

// Snapshot is a capture together with its sampled occupancy.
type Snapshot struct {
	*Capture
	Occupancy *Occupancy
}

// OccupancyCache memoizes snapshots per rendering surface. Surfaces must call Invalidate after every redraw and cached snapshots are never modified. It is not safe for concurrent use.
type OccupancyCache struct {
	Padding float64

	snapshots map[interface{}]*Snapshot
}

// NewOccupancyCache returns an empty cache that pads the plotting area by DefaultOccupancyPadding.
func NewOccupancyCache() *OccupancyCache {
	return &OccupancyCache{
		Padding:   DefaultOccupancyPadding,
		snapshots: map[interface{}]*Snapshot{},
	}
}

// Get returns the snapshot for the surface identified by key, calling capture and sampling its occupancy when there is none.
func (cache *OccupancyCache) Get(key interface{}, capture func() (*Capture, error)) (*Snapshot, error) {
	if cache.snapshots == nil {
		cache.snapshots = map[interface{}]*Snapshot{}
	}
	if snapshot, ok := cache.snapshots[key]; ok {
		return snapshot, nil
	}

	c, err := capture()
	if err != nil {
		return nil, err
	}
	snapshot := &Snapshot{
		Capture:   c,
		Occupancy: NewOccupancy(c.Image, c.Background, c.PlotArea, cache.Padding),
	}
	cache.snapshots[key] = snapshot
	return snapshot, nil
}

// Invalidate drops the snapshot of the surface identified by key.
func (cache *OccupancyCache) Invalidate(key interface{}) {
	delete(cache.snapshots, key)
}

// Reset drops all snapshots.
func (cache *OccupancyCache) Reset() {
	cache.snapshots = map[interface{}]*Snapshot{}
}

// Len returns the number of cached snapshots.
func (cache *OccupancyCache) Len() int {
	return len(cache.snapshots)
}
