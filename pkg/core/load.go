package core

import (
	"errors"
	"io/fs"
	"os"

	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
)

// LoadConfig reads the manifest at path. A missing file yields the built-in
// default manifest and found=false.
func LoadConfig(path string) (cfg manifest.Config, found bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return manifest.Default(), false, nil
	}
	if err != nil {
		return manifest.Config{}, false, err
	}
	cfg, err = manifest.Parse(b)
	if err != nil {
		return manifest.Config{}, true, err
	}
	return cfg, true, nil
}
