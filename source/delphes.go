package source

import (
	"github.com/pkg/errors"
	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/decibelcooper/zzx"
)

// Delphes reads events from Delphes ROOT trees. Jets are rebuilt from
// their (PT, Eta, Phi, Mass) branches, photons are only counted.
type Delphes struct {
	tree  rtree.Tree
	close func() error
}

func OpenDelphes(name string, files ...string) (*Delphes, error) {
	tree, closer, err := rtree.ChainOf(name, files...)
	if err != nil {
		return nil, errors.Wrapf(err, "open tree %q", name)
	}
	return &Delphes{tree: tree, close: closer}, nil
}

func (d *Delphes) Entries() int64 {
	return d.tree.Entries()
}

func (d *Delphes) Scan(n int64, fn func(entry int64, evt zzx.Event) error) error {
	if n <= 0 {
		return nil
	}
	if n > d.tree.Entries() {
		n = d.tree.Entries()
	}

	var (
		nPhotons int32
		jetPT    []float32
		jetEta   []float32
		jetPhi   []float32
		jetMass  []float32
	)
	rvars := []rtree.ReadVar{
		{Name: "Photon_size", Value: &nPhotons},
		{Name: "Jet.PT", Value: &jetPT},
		{Name: "Jet.Eta", Value: &jetEta},
		{Name: "Jet.Phi", Value: &jetPhi},
		{Name: "Jet.Mass", Value: &jetMass},
	}

	r, err := rtree.NewReader(d.tree, rvars, rtree.WithRange(0, n))
	if err != nil {
		return errors.Wrap(err, "create tree reader")
	}
	defer r.Close()

	err = r.Read(func(ctx rtree.RCtx) error {
		evt := zzx.Event{
			Photons: int(nPhotons),
			Jets:    make([]fmom.PxPyPzE, len(jetPT)),
		}
		for i := range jetPT {
			evt.Jets[i] = zzx.NewJet(
				float64(jetPT[i]),
				float64(jetEta[i]),
				float64(jetPhi[i]),
				float64(jetMass[i]),
			)
		}
		return fn(ctx.Entry, evt)
	})
	return errors.Wrap(err, "read Delphes tree")
}

func (d *Delphes) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}
