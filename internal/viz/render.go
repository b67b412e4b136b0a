package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/taylab/internal/sweep"
)

// RenderFile writes a sweep curve to path; the file extension picks the
// format (png, svg, pdf, ...). A non-nil reference function is drawn as a
// dashed second curve for visual comparison.
func RenderFile(path, title string, result *sweep.Result, reference func(float64) float64) error {
	pts := make(plotter.XYs, 0, len(result.Xs))
	for i := range result.Xs {
		v := result.Values[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: result.Xs[i], Y: v})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no finite points to render")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0x00, G: 0xb0, B: 0xd0, A: 0xff}
	p.Add(line)
	p.Legend.Add("series", line)

	if reference != nil {
		refPts := make(plotter.XYs, 0, len(result.Xs))
		for _, x := range result.Xs {
			y := reference(x)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			refPts = append(refPts, plotter.XY{X: x, Y: y})
		}
		if len(refPts) > 0 {
			ref, err := plotter.NewLine(refPts)
			if err != nil {
				return err
			}
			ref.Color = color.RGBA{R: 0xd0, G: 0x60, B: 0x30, A: 0xff}
			ref.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
			p.Add(ref)
			p.Legend.Add("reference", ref)
		}
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
