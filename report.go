package zzx

import (
	"fmt"
	"io"
)

// Reporter prints the run header, progress at ~1% granularity and the
// per-channel summaries.
type Reporter struct {
	w     io.Writer
	total int64
	step  int64
}

func NewReporter(w io.Writer, total int64) *Reporter {
	step := total / 100
	if step < 1 {
		step = 1
	}
	return &Reporter{w: w, total: total, step: step}
}

func (r *Reporter) Header(chans []*Channel) {
	fmt.Fprintf(r.w, "  * Chain contains %d events\n", r.total)
	for _, ch := range chans {
		fmt.Fprintf(r.w, "  * Margin for Z Mass: %g\n", ch.Selector.Window.Margin)
	}
}

func (r *Reporter) Progress(entry int64) {
	if entry%r.step != 0 {
		return
	}
	fmt.Fprintf(r.w, "Progress: %.6g%%\n", 100*float64(entry)/float64(r.total))
}

func (r *Reporter) Summary(chans []*Channel) {
	fmt.Fprintln(r.w, "Progress: 100%")
	for _, ch := range chans {
		if len(chans) > 1 {
			fmt.Fprintf(r.w, "Margin %g:\n", ch.Selector.Window.Margin)
		}
		fmt.Fprintf(r.w, "Number of events that match criteria: %d\n", ch.Acc.Matched)
		fmt.Fprintf(r.w, "Percentage of such events:            %g%%\n", ch.Acc.Percent())
	}
}
