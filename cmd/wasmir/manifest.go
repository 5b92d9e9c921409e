package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"wasmir/internal/opcode"
)

const noManifestMessage = "no wasmir.toml found\nfeature filtering needs a manifest, e.g.:\n  [features]\n  enabled = [\"simd\", \"bulk-memory\"]"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Features featuresConfig `toml:"features"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type featuresConfig struct {
	Enabled []string `toml:"enabled"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "wasmir.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*projectManifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &projectManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// enabledFeatures folds the manifest's feature names into a set,
// rejecting unknown names.
func (m *projectManifest) enabledFeatures() (opcode.FeatureSet, error) {
	var set opcode.FeatureSet
	for _, name := range m.Config.Features.Enabled {
		f := opcode.FeatureByName(name)
		if f == 0 {
			return 0, fmt.Errorf("%s: unknown feature %q", m.Path, name)
		}
		set |= f
	}
	return set, nil
}
