package zzx

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable cuts of the analysis. It can be read from a
// YAML file; zero-valued fields keep their defaults.
type Config struct {
	Tree           string     `yaml:"tree"`
	ZMass          float64    `yaml:"zMass"`
	Margins        []float64  `yaml:"margins"`
	SamplePercent  float64    `yaml:"samplePercent"`
	FirstMatchOnly bool       `yaml:"firstMatchOnly"`
	Hist           HistConfig `yaml:"hist"`
}

// HistConfig is the binning of the X mass histogram.
type HistConfig struct {
	Bins int     `yaml:"bins"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

func DefaultConfig() Config {
	return Config{
		Tree:          "Delphes",
		ZMass:         ZMass,
		Margins:       []float64{DefaultMargin},
		SamplePercent: 100,
		Hist: HistConfig{
			Bins: 150,
			Min:  0,
			Max:  3000,
		},
	}
}

// LoadConfig reads a YAML cuts file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Tree == "" {
		return errors.New("tree name is empty")
	}
	if c.ZMass <= 0 {
		return errors.Errorf("invalid Z mass %g", c.ZMass)
	}
	if len(c.Margins) == 0 {
		return errors.New("no margin given")
	}
	for _, m := range c.Margins {
		if m <= 0 {
			return errors.Errorf("invalid margin %g", m)
		}
	}
	if c.SamplePercent <= 0 || c.SamplePercent > 100 {
		return errors.Errorf("sample percent %g outside (0, 100]", c.SamplePercent)
	}
	if c.Hist.Bins <= 0 {
		return errors.Errorf("invalid number of bins %d", c.Hist.Bins)
	}
	if c.Hist.Max <= c.Hist.Min {
		return errors.Errorf("invalid histogram range [%g, %g]", c.Hist.Min, c.Hist.Max)
	}
	return nil
}

// Channels builds one channel per margin.
func (c Config) Channels() []*Channel {
	chans := make([]*Channel, 0, len(c.Margins))
	for _, margin := range c.Margins {
		sel := NewSelector(c.ZMass, margin)
		sel.FirstOnly = c.FirstMatchOnly
		chans = append(chans, NewChannel(sel, c.Hist))
	}
	return chans
}

// SampleSize returns the number of leading entries covered by percent,
// truncated.
func SampleSize(entries int64, percent float64) int64 {
	return int64(percent * float64(entries) / 100)
}
