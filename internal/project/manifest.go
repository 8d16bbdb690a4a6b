package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of a project manifest.
const ManifestName = "pact.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// Manifest describes a pact.toml [package] section.
type Manifest struct {
	Name  string
	Entry string // optional entry file, relative to the manifest directory
	Dir   string // directory containing the manifest
}

type manifestFile struct {
	Package struct {
		Name  string `toml:"name"`
		Entry string `toml:"entry"`
	} `toml:"package"`
}

// Load parses a pact.toml manifest.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if cfg.Package.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	return &Manifest{
		Name:  cfg.Package.Name,
		Entry: cfg.Package.Entry,
		Dir:   filepath.Dir(path),
	}, nil
}

// EntryPath returns the absolute path of the entry file, or "" when the
// manifest does not declare one.
func (m *Manifest) EntryPath() string {
	if m.Entry == "" {
		return ""
	}
	return filepath.Join(m.Dir, m.Entry)
}

// Locate finds the nearest pact.toml at or above dir and parses it. The
// boolean reports whether a manifest file was found; a found manifest that
// fails to parse is returned as (nil, true, err).
func Locate(dir string) (*Manifest, bool, error) {
	root, ok := FindRoot(dir)
	if !ok {
		return nil, false, nil
	}
	manifest, err := Load(filepath.Join(root, ManifestName))
	if err != nil {
		return nil, true, err
	}
	return manifest, true, nil
}

// FindRoot walks up from dir looking for a pact.toml and returns the
// directory containing it.
func FindRoot(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
