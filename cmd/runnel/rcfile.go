package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/signadot/runnel/encode"
)

// rcFile holds defaults read from .runnel.yaml or .runnel.json in
// the working directory, falling back to the home directory. Flags
// override anything set here.
type rcFile struct {
	Color  *bool  `yaml:"color" json:"color"`
	Format string `yaml:"format" json:"format"`
}

func loadRC() (*rcFile, error) {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		for _, f := range encode.AllFormats() {
			p := filepath.Join(dir, ".runnel"+f.Suffix())
			data, err := os.ReadFile(p)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			rc := &rcFile{}
			if err := yaml.Unmarshal(data, rc); err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
			return rc, nil
		}
	}
	return nil, nil
}

func (cfg *MainConfig) applyRC(rc *rcFile) error {
	if rc == nil {
		return nil
	}
	if rc.Color != nil {
		cfg.Color = *rc.Color
	}
	if rc.Format != "" {
		f, err := encode.ParseFormat(rc.Format)
		if err != nil {
			return err
		}
		cfg.OutFormat = &f
	}
	return nil
}
