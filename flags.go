package zzx

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// MarginFlags is a repeatable flag of mass window margins. The first
// value given on the command line replaces the defaults.
type MarginFlags struct {
	Margins []float64
	beenSet bool
}

func (f *MarginFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return errors.Wrapf(err, "margin %q", valueStr)
	}
	if value <= 0 {
		return errors.Errorf("margin must be positive, got %g", value)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Margins = nil
	}

	for _, m := range f.Margins {
		if m == value {
			return nil
		}
	}
	f.Margins = append(f.Margins, value)
	return nil
}

func (f *MarginFlags) String() string {
	if f == nil {
		return "[]"
	}
	return fmt.Sprint(f.Margins)
}

// IsSet reports whether the flag was given on the command line.
func (f *MarginFlags) IsSet() bool {
	return f.beenSet
}
