package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/graph-genome/pangraph/core"
)

// SpecimenSupport collects the specimen count of every node traversed by
// at least one path in zoom, one entry per distinct node, order
// unspecified.
//
// Complexity: O(P*L + V) where L is average path length.
func SpecimenSupport(zoom *core.ZoomLevel) []int {
	seen := make(map[string]bool)
	var support []int
	for _, p := range zoom.Paths {
		for _, t := range p.Traversals {
			if seen[t.Node.Name] {
				continue
			}
			seen[t.Node.Name] = true
			support = append(support, t.Node.Specimens.Len())
		}
	}
	return support
}

// Summary is a small descriptive statistics bundle over a support slice.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes Summary over support via gonum/stat. An empty
// support returns the zero Summary.
func Summarize(support []int) Summary {
	if len(support) == 0 {
		return Summary{}
	}
	values := make([]float64, len(support))
	min, max := support[0], support[0]
	for i, v := range support {
		values[i] = float64(v)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return Summary{Mean: mean, StdDev: std, Min: float64(min), Max: float64(max)}
}

// PlotSupportHistogram renders a histogram of support to path as a PNG,
// in the style of kortschak-smeargol's plotValues: a fresh plot.New,
// one plotter added, then p.Save.
func PlotSupportHistogram(path string, support []int) error {
	values := make(plotter.Values, len(support))
	for i, v := range support {
		values[i] = float64(v)
	}

	p := plot.New()
	p.Title.Text = "Specimen support"
	p.X.Label.Text = "specimens"
	p.Y.Label.Text = "nodes"

	hist, err := plotter.NewHist(values, 16)
	if err != nil {
		return fmt.Errorf("report: building histogram: %w", err)
	}
	hist.FillColor = color.RGBA{B: 196, A: 255}
	p.Add(hist)

	return p.Save(18*vg.Centimeter, 15*vg.Centimeter, path)
}
