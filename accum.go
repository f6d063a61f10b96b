package zzx

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// Accumulator collects the X candidate masses of one selection together
// with its event counters.
type Accumulator struct {
	Hist *hbook.H1D

	// Events counts every event offered, skipped or not.
	Events int64
	// Matched counts accepted groupings, so one event may add several.
	Matched int64
}

func NewAccumulator(cfg HistConfig) *Accumulator {
	return &Accumulator{
		Hist: hbook.NewH1D(cfg.Bins, cfg.Min, cfg.Max),
	}
}

func (a *Accumulator) Fill(c Candidate) {
	a.Hist.Fill(c.Mass(), 1)
	a.Matched++
}

// Percent returns Matched as a percentage of Events, 0 when no event was
// seen.
func (a *Accumulator) Percent() float64 {
	if a.Events == 0 {
		return 0
	}
	return 100 * float64(a.Matched) / float64(a.Events)
}

// Channel pairs a selector with the accumulator it fills.
type Channel struct {
	Selector Selector
	Acc      *Accumulator
}

func NewChannel(sel Selector, hist HistConfig) *Channel {
	ch := &Channel{
		Selector: sel,
		Acc:      NewAccumulator(hist),
	}
	ann := ch.Acc.Hist.Annotation()
	ann["name"] = fmt.Sprintf("hist_margin_%g", sel.Window.Margin)
	ann["title"] = fmt.Sprintf("Particle \"X\" Invariant Mass Histogram (margin %g GeV/c^2)", sel.Window.Margin)
	return ch
}

// Process runs the selection on evt and fills every accepted candidate.
// It returns the number of candidates filled.
func (ch *Channel) Process(evt Event) int {
	ch.Acc.Events++
	cands := ch.Selector.Select(evt)
	for _, c := range cands {
		ch.Acc.Fill(c)
	}
	return len(cands)
}
