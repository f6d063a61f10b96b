package zzx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/fmom"
)

type memSource struct {
	events []Event
	fail   int64
}

func (s *memSource) Entries() int64 { return int64(len(s.events)) }

func (s *memSource) Scan(n int64, fn func(int64, Event) error) error {
	for i := int64(0); i < n && i < int64(len(s.events)); i++ {
		if s.fail > 0 && i == s.fail {
			return errors.New("corrupt basket")
		}
		if err := fn(i, s.events[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *memSource) Close() error { return nil }

func zzEvent() Event {
	return Event{Photons: 1, Jets: []fmom.PxPyPzE{atRest(90), atRest(92)}}
}

func TestRunFillsHistogram(t *testing.T) {
	src := &memSource{events: []Event{
		zzEvent(),
		{Photons: 1, Jets: []fmom.PxPyPzE{atRest(91)}},
		{Photons: 0, Jets: []fmom.PxPyPzE{atRest(90), atRest(92)}},
		zzEvent(),
	}}
	chans := DefaultConfig().Channels()

	var out bytes.Buffer
	n, err := Run(src, 100, chans, NewReporter(&out, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	acc := chans[0].Acc
	assert.Equal(t, int64(4), acc.Events)
	assert.Equal(t, int64(4), acc.Matched)
	assert.Equal(t, int64(4), acc.Hist.Entries())
	assert.InDelta(t, 182.0, acc.Hist.XMean(), 1e-9)
	assert.InDelta(t, 100.0, acc.Percent(), 1e-9)

	text := out.String()
	assert.Contains(t, text, "  * Chain contains 4 events\n")
	assert.Contains(t, text, "  * Margin for Z Mass: 10\n")
	assert.Contains(t, text, "Progress: 0%\n")
	assert.Contains(t, text, "Progress: 75%\n")
	assert.Contains(t, text, "Progress: 100%\n")
	assert.Contains(t, text, "Number of events that match criteria: 4\n")
	assert.Contains(t, text, "Percentage of such events:            100%\n")
}

func TestRunSkippedEventLeavesCounters(t *testing.T) {
	src := &memSource{events: []Event{
		{Photons: 1, Jets: []fmom.PxPyPzE{atRest(91)}},
	}}
	chans := DefaultConfig().Channels()

	_, err := Run(src, 100, chans, nil)
	require.NoError(t, err)

	acc := chans[0].Acc
	assert.Equal(t, int64(0), acc.Matched)
	assert.Equal(t, int64(0), acc.Hist.Entries())
}

func TestRunSample(t *testing.T) {
	var events []Event
	for i := 0; i < 10; i++ {
		events = append(events, zzEvent())
	}
	chans := DefaultConfig().Channels()

	n, err := Run(&memSource{events: events}, 35, chans, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, int64(6), chans[0].Acc.Matched)
}

func TestRunEmptySample(t *testing.T) {
	chans := DefaultConfig().Channels()

	var out bytes.Buffer
	n, err := Run(&memSource{events: []Event{zzEvent()}}, 50, chans, NewReporter(&out, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Contains(t, out.String(), "Percentage of such events:            0%\n")
}

func TestRunSeveralMargins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Margins = []float64{0.5, 10}
	chans := cfg.Channels()

	src := &memSource{events: []Event{zzEvent()}}
	var out bytes.Buffer
	_, err := Run(src, 100, chans, NewReporter(&out, 1))
	require.NoError(t, err)

	assert.Equal(t, int64(0), chans[0].Acc.Matched)
	assert.Equal(t, int64(2), chans[1].Acc.Matched)
	assert.Contains(t, out.String(), "Margin 0.5:\n")
	assert.Contains(t, out.String(), "Margin 10:\n")
}

func TestRunScanError(t *testing.T) {
	src := &memSource{events: []Event{zzEvent(), zzEvent(), zzEvent()}, fail: 2}

	n, err := Run(src, 100, DefaultConfig().Channels(), nil)
	require.Error(t, err)
	assert.Equal(t, int64(2), n)
	assert.Contains(t, err.Error(), "corrupt basket")
}

func TestReporterFewEvents(t *testing.T) {
	var out bytes.Buffer
	rep := NewReporter(&out, 3)
	for i := int64(0); i < 3; i++ {
		rep.Progress(i)
	}
	assert.Equal(t, 3, strings.Count(out.String(), "Progress:"))
	assert.Contains(t, out.String(), "Progress: 33.3333%\n")
	assert.Contains(t, out.String(), "Progress: 66.6667%\n")
}

func TestReporterStep(t *testing.T) {
	var out bytes.Buffer
	rep := NewReporter(&out, 1000)
	for i := int64(0); i < 1000; i++ {
		rep.Progress(i)
	}
	assert.Equal(t, 100, strings.Count(out.String(), "Progress:"))
	assert.Contains(t, out.String(), "Progress: 99%\n")
}
