// Package source reads detector simulation output into zzx events.
package source

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/decibelcooper/zzx"
)

// Open chains the given files. Files ending in .proio are read with
// proio, everything else as ROOT files holding the named Delphes tree.
// All files must share one format.
func Open(tree string, files ...string) (zzx.Source, error) {
	if len(files) == 0 {
		return nil, errors.New("no input files")
	}

	nProio := 0
	for _, f := range files {
		if filepath.Ext(f) == ".proio" {
			nProio++
		}
	}

	var (
		src zzx.Source
		err error
	)
	switch nProio {
	case 0:
		src, err = OpenDelphes(tree, files...)
	case len(files):
		src, err = OpenProio(files...)
	default:
		return nil, errors.New("cannot chain proio and ROOT inputs")
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}
