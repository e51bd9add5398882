// Package config provides the configuration loader for kimai-plugins.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the name of the optional config file at the installation root.
const DefaultFilename = "kimai-plugins.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a new configuration loader reading DefaultFilename.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		logger:   log,
	}
}

// Load reads the configuration for the installation rooted at root.
func (l *Loader) Load(root string) (*domain.Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root directory"), "root", root)
	}

	path := filepath.Join(abs, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user-provided root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(abs), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	manifest, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.logger != nil {
		l.logger.Info("Using configuration " + l.Filename)
	}
	return manifest.toConfig(abs)
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	manifest, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve root directory")
	}
	return manifest.toConfig(root)
}

func parse(data []byte) (*Manifest, error) {
	var manifest Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return &manifest, nil
}

func (m *Manifest) toConfig(root string) (*domain.Config, error) {
	cfg := domain.DefaultConfig(root)

	cfg.VendorDir = strings.TrimSpace(m.VendorDir)
	if m.PluginsDir != "" {
		cfg.PluginsDir = m.PluginsDir
	}
	if m.LockFile != "" {
		if filepath.Base(m.LockFile) != m.LockFile {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "lockFile must be a file name"), "lockFile", m.LockFile)
		}
		cfg.LockFile = m.LockFile
	}
	if m.Marker != "" {
		cfg.Marker = m.Marker
	}
	if m.Suffix != nil {
		cfg.Convention.Suffix = *m.Suffix
	}

	policy, err := domain.ParsePolicy(m.Policy)
	if err != nil {
		return nil, err
	}
	cfg.Convention.Policy = policy

	if len(m.Types) > 0 {
		cfg.Types = canonicalizeStrings(m.Types)
	}

	return cfg, nil
}

func canonicalizeStrings(strs []string) []string {
	res := make([]string, 0, len(strs))
	for _, s := range strs {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
