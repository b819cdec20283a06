package main

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/canvasplot"
)

type Plot struct {
	Output   string  `short:"o" default:"out.png" desc:"Output file, the format is given by the extension"`
	Config   string  `short:"c" desc:"YAML file with placer options"`
	DPI      float64 `default:"100" desc:"Resolution in dots per inch"`
	Width    float64 `default:"160" desc:"Width in millimeters"`
	Height   float64 `default:"120" desc:"Height in millimeters"`
	FontSize float64 `default:"9" desc:"Label font size in points"`
	Verbose  bool    `short:"v" desc:"Report labels that could not be placed"`
	Input    string  `index:"0" desc:"Input file (CSV or GeoJSON)"`
}

type Spread struct {
	Margin float64 `short:"m" default:"1" desc:"Minimum distance between neighbouring values"`
	Values string  `index:"0" desc:"Comma-separated values"`
}

func main() {
	log.SetFlags(0)

	root := argp.NewCmd(&Plot{}, "Scatter plot labeling tool")
	root.AddCmd(&Spread{}, "spread", "Spread values apart")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Plot) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	opts, err := LoadOptions(cmd.Config)
	if err != nil {
		return err
	}
	records, err := ReadFile(cmd.Input)
	if err != nil {
		return err
	} else if len(records) == 0 {
		return fmt.Errorf("no points in %s", cmd.Input)
	}

	p, err := canvasplot.New(cmd.Width, cmd.Height, cmd.DPI)
	if err != nil {
		return err
	}
	p.SetFontSize(cmd.FontSize)

	res, err := Draw(p, records, opts)
	if err != nil {
		return err
	}
	if cmd.Verbose {
		for _, i := range res.Dropped {
			log.Printf("dropped label %d: %q", i, records[i].Label)
		}
		log.Printf("placed %d of %d labels", len(res.Labels), len(res.Labels)+len(res.Dropped))
	}
	return p.WriteFile(cmd.Output)
}

// Draw draws the records as a scatter plot and labels them.
func Draw(p *canvasplot.Plot, records []Record, opts labels.Options) (*labels.Result, error) {
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	texts := make([]string, len(records))
	var colors []color.Color
	for i, rec := range records {
		xs[i], ys[i], texts[i] = rec.X, rec.Y, rec.Label
		if rec.Color == nil {
			continue
		} else if colors == nil {
			colors = make([]color.Color, len(records))
			for j := range colors {
				colors[j] = color.Black
			}
		}
		colors[i] = rec.Color
	}

	p.FitDataRange(xs, ys, 0.05)
	p.Frame()
	if err := p.Scatter(xs, ys, colors); err != nil {
		return nil, err
	}

	cache := labels.NewOccupancyCache()
	p.Attach(cache)
	return labels.ScatterLabels(p, texts, nil, cache, opts)
}

func (cmd *Spread) Run() error {
	if cmd.Values == "" {
		return argp.ShowUsage
	}

	xs := []float64{}
	for _, s := range strings.Split(cmd.Values, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return err
		}
		xs = append(xs, x)
	}

	ys := labels.Spread(xs, []float64{cmd.Margin / 2.0})
	strs := make([]string, len(ys))
	for i, y := range ys {
		strs[i] = strconv.FormatFloat(y, 'g', -1, 64)
	}
	fmt.Println(strings.Join(strs, ","))
	return nil
}
