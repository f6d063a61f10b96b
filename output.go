package zzx

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// NewPlot overlays the X mass histograms of all channels.
func NewPlot(title string, chans []*Channel) *hplot.Plot {
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = "Invariant Mass (GeV/c^2)"
	p.Y.Label.Text = "Instances"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	for i, ch := range chans {
		lineColor := color.RGBA{A: 255}
		switch i % 4 {
		case 1:
			lineColor = color.RGBA{G: 255, A: 255}
		case 2:
			lineColor = color.RGBA{B: 255, A: 255}
		case 3:
			lineColor = color.RGBA{R: 255, B: 127, G: 127, A: 255}
		}

		h := hplot.NewH1D(ch.Acc.Hist)
		h.FillColor = nil
		h.LineStyle.Color = lineColor
		if len(chans) == 1 {
			h.Infos.Style = hplot.HInfoSummary
		} else {
			p.Legend.Add(fmt.Sprintf("margin %g GeV/c^2", ch.Selector.Window.Margin), h)
		}

		p.Add(h)
	}

	return p
}

func SavePlot(p *hplot.Plot, output string) error {
	return errors.Wrapf(p.Save(6*vg.Inch, 4*vg.Inch, output), "save plot %s", output)
}

// WriteROOT stores the histogram of every channel in a new ROOT file,
// keyed by the histogram name annotation.
func WriteROOT(fname string, chans []*Channel) error {
	f, err := groot.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "create %s", fname)
	}

	for _, ch := range chans {
		name, _ := ch.Acc.Hist.Annotation()["name"].(string)
		if name == "" {
			name = "hist"
		}
		if err := f.Put(name, rhist.NewH1DFrom(ch.Acc.Hist)); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s to %s", name, fname)
		}
	}

	return errors.Wrapf(f.Close(), "close %s", fname)
}
