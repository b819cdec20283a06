package main

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/labels"
	"gopkg.in/yaml.v3"
)

// Record is a labeled data point.
type Record struct {
	X, Y  float64
	Label string
	Color color.Color
}

func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// ReadCSV reads records with the columns x, y, label and an optional hex color. A first row whose x value is not a number is a header.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records := []Record{}
	for row := 0; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		} else if len(fields) < 2 {
			return nil, fmt.Errorf("row %d: need at least x and y columns", row+1)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			if row == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: bad x value: %w", row+1, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad y value: %w", row+1, err)
		}

		rec := Record{X: x, Y: y}
		if 2 < len(fields) {
			rec.Label = fields[2]
		}
		if 3 < len(fields) {
			if rec.Color, err = parseColor(strings.TrimSpace(fields[3])); err != nil {
				return nil, fmt.Errorf("row %d: bad color: %w", row+1, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadGeoJSON reads the point features of a feature collection, taking the label from the label or name property and the color from the color property. Other geometries are skipped.
func ReadGeoJSON(b []byte) ([]Record, error) {
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		rec := Record{X: pt.Lon(), Y: pt.Lat()}
		if rec.Label = f.Properties.MustString("label", ""); rec.Label == "" {
			rec.Label = f.Properties.MustString("name", "")
		}
		if rec.Color, err = parseColor(f.Properties.MustString("color", "")); err != nil {
			return nil, fmt.Errorf("feature %d: bad color: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile reads records from a CSV or GeoJSON file depending on its extension.
func ReadFile(filename string) ([]Record, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".json", ".geojson":
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return ReadGeoJSON(b)
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}

// LoadOptions returns the placer options of a YAML file, with unset fields taken from labels.DefaultOptions.
func LoadOptions(filename string) (labels.Options, error) {
	opts := labels.DefaultOptions
	if filename == "" {
		return opts, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return opts, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}
