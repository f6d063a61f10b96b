package zzx

import (
	"go-hep.org/x/hep/fmom"
)

const (
	// ZMass is the Z boson rest mass in GeV/c^2.
	ZMass = 91.1876
	// DefaultMargin is the half width of the Z mass window in GeV/c^2.
	DefaultMargin = 10.0
)

// Event holds what the selection needs from one detector event. Jets
// are kept in detection order.
type Event struct {
	Photons int
	Jets    []fmom.PxPyPzE
}

// Window is the open interval (Center-Margin, Center+Margin).
type Window struct {
	Center float64
	Margin float64
}

func (w Window) Contains(m float64) bool {
	return w.Center-w.Margin < m && m < w.Center+w.Margin
}

// Accepts reports whether both masses fall inside the window.
func (w Window) Accepts(m1, m2 float64) bool {
	return w.Contains(m1) && w.Contains(m2)
}

// Candidate is one accepted grouping of the jets of an event into two Z
// candidates. X is their sum.
type Candidate struct {
	Group  []int
	Z1, Z2 fmom.PxPyPzE
	X      fmom.PxPyPzE
}

// Mass returns the invariant mass of the combined system.
func (c Candidate) Mass() float64 {
	return c.X.M()
}

type Selector struct {
	Window Window

	// FirstOnly stops the search of an event at its first accepted
	// grouping. When false every accepted grouping is reported.
	FirstOnly bool
}

func NewSelector(zMass, margin float64) Selector {
	return Selector{Window: Window{Center: zMass, Margin: margin}}
}

// Skip reports whether the event fails the exactly-one-photon and
// at-least-two-jets preselection.
func (s Selector) Skip(evt Event) bool {
	return evt.Photons != 1 || len(evt.Jets) < 2
}

// Select tests every bipartition of the event jets against the window
// and returns the accepted ones, in generation order. It returns nil for
// skipped events.
func (s Selector) Select(evt Event) []Candidate {
	if s.Skip(evt) {
		return nil
	}

	nJets := len(evt.Jets)
	var cands []Candidate
	for _, group := range Bipartitions(nJets) {
		z1 := SumP4(evt.Jets, group)
		z2 := SumP4(evt.Jets, Complement(nJets, group))
		if !s.Window.Accepts(z1.M(), z2.M()) {
			continue
		}

		x := fmom.Add(&z1, &z2)
		cands = append(cands, Candidate{
			Group: group,
			Z1:    z1,
			Z2:    z2,
			X:     fmom.NewPxPyPzE(x.Px(), x.Py(), x.Pz(), x.E()),
		})
		if s.FirstOnly {
			break
		}
	}
	return cands
}

// SumP4 returns the 4-momentum sum of the jets at the given indices.
func SumP4(jets []fmom.PxPyPzE, idx []int) fmom.PxPyPzE {
	var px, py, pz, e float64
	for _, i := range idx {
		jet := &jets[i]
		px += jet.Px()
		py += jet.Py()
		pz += jet.Pz()
		e += jet.E()
	}
	return fmom.NewPxPyPzE(px, py, pz, e)
}

// NewJet builds a jet 4-momentum from its transverse momentum,
// pseudorapidity, azimuth and mass, the way detector simulation stores
// jets.
func NewJet(pt, eta, phi, m float64) fmom.PxPyPzE {
	p := fmom.NewPtEtaPhiM(pt, eta, phi, m)
	return fmom.NewPxPyPzE(p.Px(), p.Py(), p.Pz(), p.E())
}
