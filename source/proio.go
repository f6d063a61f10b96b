package source

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/fmom"

	"github.com/decibelcooper/zzx"
)

const (
	PhotonTag = "Photon"
	JetTag    = "Jet"
)

// Proio reads events from proio streams. Entries tagged PhotonTag are
// counted as photons; entries tagged JetTag must be eic.Particle records
// carrying the jet momentum and mass.
//
// Streams carry no event count, so OpenProio reads every file once to
// count entries and Scan reads them again.
type Proio struct {
	files   []string
	entries int64
}

func OpenProio(files ...string) (*Proio, error) {
	src := &Proio{files: files}
	for _, filename := range files {
		reader, err := proio.Open(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", filename)
		}
		for range reader.ScanEvents() {
			src.entries++
		}
		err = scanErr(reader)
		reader.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "count events in %s", filename)
		}
	}
	return src, nil
}

func (p *Proio) Entries() int64 {
	return p.entries
}

func (p *Proio) Scan(n int64, fn func(entry int64, evt zzx.Event) error) error {
	var entry int64
	for _, filename := range p.files {
		if entry >= n {
			break
		}

		reader, err := proio.Open(filename)
		if err != nil {
			return errors.Wrapf(err, "open %s", filename)
		}

		var fnErr error
		// the scan goroutine only stops once drained
		for event := range reader.ScanEvents() {
			if entry >= n || fnErr != nil {
				continue
			}
			fnErr = fn(entry, proioEvent(event))
			entry++
		}
		err = scanErr(reader)
		reader.Close()

		if fnErr != nil {
			return fnErr
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", filename)
		}
	}
	return nil
}

// scanErr returns the error that ended a drained ScanEvents, if it was
// not the end of the stream.
func scanErr(reader *proio.Reader) error {
	if reader.Err == io.EOF {
		return nil
	}
	return reader.Err
}

func (p *Proio) Close() error {
	return nil
}

func proioEvent(event *proio.Event) zzx.Event {
	evt := zzx.Event{
		Photons: len(event.TaggedEntries(PhotonTag)),
	}
	for _, id := range event.TaggedEntries(JetTag) {
		part, ok := event.GetEntry(id).(*eic.Particle)
		if !ok {
			continue
		}
		evt.Jets = append(evt.Jets, particleP4(part))
	}
	return evt
}

func particleP4(part *eic.Particle) fmom.PxPyPzE {
	px := float64(part.GetP().GetX())
	py := float64(part.GetP().GetY())
	pz := float64(part.GetP().GetZ())
	m := float64(part.GetMass())
	e := math.Sqrt(px*px + py*py + pz*pz + m*m)
	return fmom.NewPxPyPzE(px, py, pz, e)
}
