// Package installer implements the Kimai plugin installer: it decides where plugin
// packages are unpacked and records every accepted package for the lock reconciler.
package installer

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Installer = (*Installer)(nil)

// Installer implements ports.Installer for Kimai plugin packages.
type Installer struct {
	root       string
	vendorDir  string
	pluginsDir string
	convention domain.NamingConvention
	types      []string
	installed  *domain.InstalledSet
	logger     ports.Logger
}

// New creates an Installer for the installation described by cfg.
// vendorDir is the absolute vendor directory; the root is its parent.
// Accepted packages are added to installed.
func New(cfg *domain.Config, vendorDir string, installed *domain.InstalledSet, log ports.Logger) *Installer {
	return &Installer{
		root:       filepath.Dir(filepath.Clean(vendorDir)),
		vendorDir:  filepath.Clean(vendorDir),
		pluginsDir: filepath.FromSlash(cfg.PluginsDir),
		convention: cfg.Convention,
		types:      slices.Clone(cfg.Types),
		installed:  installed,
		logger:     log,
	}
}

// Supports reports whether packageType is one of the configured plugin types.
func (i *Installer) Supports(packageType string) bool {
	return slices.Contains(i.types, packageType)
}

// InstallPath returns <root>/<pluginsDir>/<name>/ for packages following the naming convention.
// Packages breaking it are rejected (strict) or sent to their default vendor path (lenient).
func (i *Installer) InstallPath(pkg domain.Package) (string, error) {
	if pkg.Name == "" {
		return "", domain.ErrEmptyPackageName
	}

	name := pkg.InstallName()
	if !i.convention.Validate(name) {
		return i.rejected(pkg, name)
	}

	i.installed.Add(pkg)

	return filepath.Join(i.root, i.pluginsDir, name) + string(filepath.Separator), nil
}

func (i *Installer) rejected(pkg domain.Package, name string) (string, error) {
	if i.convention.Policy == domain.PolicyLenient {
		path := i.defaultPath(pkg)
		i.logger.Warn(fmt.Sprintf(
			"Kimai plugin %s must end with %q, installing to %s instead",
			pkg.PrettyName, i.convention.Suffix, path,
		))
		return path, nil
	}

	err := zerr.Wrap(domain.ErrInvalidPluginName, fmt.Sprintf(
		"Kimai plugin %s (install name %q) must end with %q",
		pkg.PrettyName, name, i.convention.Suffix,
	))
	err = zerr.With(err, "package", pkg.PrettyName)
	return "", zerr.With(err, "suffix", i.convention.Suffix)
}

// defaultPath is where the package manager would put the package without this installer.
func (i *Installer) defaultPath(pkg domain.Package) string {
	name := pkg.PrettyName
	if name == "" {
		name = pkg.Name
	}
	return filepath.Join(i.vendorDir, filepath.FromSlash(name))
}
