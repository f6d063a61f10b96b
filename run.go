package zzx

import (
	"io"

	"github.com/pkg/errors"
)

// Source is a sequence of events read from simulation output.
type Source interface {
	// Entries returns the total number of events available.
	Entries() int64
	// Scan calls fn, in input order, for the first n events.
	Scan(n int64, fn func(entry int64, evt Event) error) error
	Close() error
}

// Run feeds the leading samplePercent of src to every channel and
// reports progress to rep. It returns the number of events processed.
func Run(src Source, samplePercent float64, chans []*Channel, rep *Reporter) (int64, error) {
	n := SampleSize(src.Entries(), samplePercent)
	if rep == nil {
		rep = NewReporter(io.Discard, n)
	}
	rep.Header(chans)

	var processed int64
	err := src.Scan(n, func(entry int64, evt Event) error {
		rep.Progress(entry)
		for _, ch := range chans {
			ch.Process(evt)
		}
		processed++
		return nil
	})
	if err != nil {
		return processed, errors.Wrapf(err, "scan events (%d/%d processed)", processed, n)
	}

	rep.Summary(chans)
	return processed, nil
}
