package labels

import (
	"fmt"
	"image/color"
)

// ScatterLabels labels the points of the first scatter series of the chart with texts, pairing texts and points by index. Colors are broadcast over the points: one color for all, one per point, or none to use the series colors. The chart must have been rendered before, its occupancy is taken from cache when given. Accepted labels are drawn on the chart in placement order. Labels that cannot be placed are listed in Result.Dropped.
func ScatterLabels(chart Chart, texts []string, colors []color.Color, cache *OccupancyCache, opts Options) (*Result, error) {
	series, err := chart.Series(ScatterMarks)
	if err != nil {
		return nil, err
	} else if len(series.Points) == 0 {
		return nil, ErrNoMatchingSeries
	}
	if len(colors) != 0 {
		series.Colors = colors
	}

	n := len(texts)
	if len(series.Points) < n {
		n = len(series.Points)
	}
	if n == 0 {
		return &Result{}, nil
	}

	if cache == nil {
		cache = NewOccupancyCache()
	}
	snapshot, err := cache.Get(chart.SurfaceKey(), chart.Capture)
	if err != nil {
		return nil, fmt.Errorf("capture chart: %w", err)
	}

	reqs := make([]LabelRequest, n)
	for i := range reqs {
		reqs[i] = LabelRequest{
			Anchor: series.Points[i],
			Text:   texts[i],
			Color:  series.Color(i),
		}
	}

	res, err := Place(Scene{
		Data:       series.Points,
		Transform:  snapshot.Transform,
		PlotArea:   snapshot.PlotArea,
		Occupancy:  snapshot.Occupancy,
		Background: snapshot.Background,
		DPI:        snapshot.DPI,
	}, reqs, chart, opts)
	if err != nil {
		return nil, err
	}

	for _, label := range res.Labels {
		if err := chart.DrawLabel(label); err != nil {
			return nil, fmt.Errorf("draw label %d: %w", label.Index, err)
		}
	}
	return res, nil
}
