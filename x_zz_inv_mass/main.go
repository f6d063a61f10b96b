package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/decibelcooper/zzx"
	"github.com/decibelcooper/zzx/source"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <delphes-or-proio-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

var (
	configFile = flag.String("config", "", "YAML file with the analysis cuts")
	title      = flag.String("title", "Particle \"X\" Invariant Mass Histogram", "plot title")
	output     = flag.String("output", "out.png", "output plot file")
	rootOutput = flag.String("rootout", "", "ROOT file to store the histograms in")
	tree       = flag.String("tree", "Delphes", "name of the Delphes tree")
	zMass      = flag.Float64("zmass", zzx.ZMass, "reference Z mass (GeV/c^2)")
	sample     = flag.Float64("sample", 100, "percentage of the leading events to process")
	firstOnly  = flag.Bool("first", false, "record only the first accepted grouping of each event")
	doProfile  = flag.Bool("profile", false, "write a CPU profile")
	margins    = &zzx.MarginFlags{Margins: []float64{zzx.DefaultMargin}}
)

func init() {
	flag.Var(margins, "margin", "Z mass window half width (GeV/c^2), may be repeated")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		logrus.Fatal("Invalid arguments")
	}

	if err := run(flag.Args()); err != nil {
		logrus.WithError(err).WithField("files", flag.Args()).Fatal("analysis failed")
	}
	fmt.Println("  * Exiting...")
}

// run does all the work of main so that its deferred cleanups, the CPU
// profile included, complete before the process exits.
func run(files []string) error {
	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	src, err := source.Open(cfg.Tree, files...)
	if err != nil {
		return errors.Wrap(err, "could not open input")
	}
	defer src.Close()

	logrus.WithFields(logrus.Fields{
		"files":   len(files),
		"entries": src.Entries(),
		"sample":  cfg.SamplePercent,
	}).Debug("input opened")

	chans := cfg.Channels()
	rep := zzx.NewReporter(os.Stdout, zzx.SampleSize(src.Entries(), cfg.SamplePercent))
	if _, err := zzx.Run(src, cfg.SamplePercent, chans, rep); err != nil {
		return err
	}

	if err := zzx.SavePlot(zzx.NewPlot(*title, chans), *output); err != nil {
		return err
	}
	logrus.WithField("file", *output).Info("plot saved")

	if *rootOutput != "" {
		if err := zzx.WriteROOT(*rootOutput, chans); err != nil {
			return err
		}
		logrus.WithField("file", *rootOutput).Info("histograms saved")
	}
	return nil
}

// loadConfig starts from the cuts file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig() (zzx.Config, error) {
	cfg := zzx.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = zzx.LoadConfig(*configFile); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tree":
			cfg.Tree = *tree
		case "zmass":
			cfg.ZMass = *zMass
		case "sample":
			cfg.SamplePercent = *sample
		case "first":
			cfg.FirstMatchOnly = *firstOnly
		case "margin":
			cfg.Margins = margins.Margins
		}
	})
	return cfg, cfg.Validate()
}
