package zzx

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks labels major ticks with as few digits as the step needs
// and fills the gaps with unlabelled minor ticks.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks < 2 {
		t.NSuggestedTicks = 4
	}

	// an empty histogram has a degenerate y range
	if !(max > min) {
		return []plot.Tick{{Value: min, Label: formatTick(min)}}
	}

	majorDelta, majorMult := t.majorStep(max - min)

	var ticks []plot.Tick
	for _, v := range multiplesIn(min, max, majorDelta) {
		v = roundTo(v, majorDelta)
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
	}

	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}

	for _, v := range multiplesIn(min, max, minorDelta) {
		if !hasTick(ticks, v, minorDelta/2) {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// majorStep picks a major tick spacing giving roughly NSuggestedTicks
// labels over span. The spacing is majorMult times a power of ten.
func (t PreciseTicks) majorStep(span float64) (float64, int) {
	tens := math.Pow10(int(math.Floor(math.Log10(span))))
	for span/tens < float64(t.NSuggestedTicks-1) {
		tens /= 10
	}

	majorMult := int(span / tens / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	return float64(majorMult) * tens, majorMult
}

func multiplesIn(min, max, delta float64) []float64 {
	var vals []float64
	for val := math.Ceil(min/delta) * delta; val <= max; val += delta {
		vals = append(vals, val)
	}
	return vals
}

func hasTick(ticks []plot.Tick, v, tol float64) bool {
	for _, t := range ticks {
		if math.Abs(t.Value-v) < tol {
			return true
		}
	}
	return false
}

// roundTo drops the floating point noise accumulated while stepping,
// keeping the digits significant at the given step.
func roundTo(v, step float64) float64 {
	if v == 0 {
		return 0
	}
	prec := -int(math.Floor(math.Log10(step)))
	if prec < 0 {
		prec = 0
	}
	pow := math.Pow10(prec)
	r := math.Round(v*pow) / pow
	if r == 0 {
		return 0
	}
	return r
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
