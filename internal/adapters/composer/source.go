// Package composer reads the package state Composer leaves behind in a project.
package composer

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	manifestFile  = "composer.json"
	installedJSON = "composer/installed.json"

	vendorDirPath = "config.vendor-dir"
)

var _ ports.PackageSource = (*Source)(nil)

// Source implements ports.PackageSource on top of composer.json and vendor/composer/installed.json.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// VendorDir returns the absolute vendor directory configured in composer.json,
// falling back to <root>/vendor.
func (s *Source) VendorDir(root string) (string, error) {
	path := filepath.Join(root, manifestFile)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user-provided root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return filepath.Join(root, domain.DefaultVendorDir), nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read composer.json"), "path", path)
	}

	if !gjson.ValidBytes(data) {
		return "", zerr.With(zerr.New("failed to parse composer.json"), "path", path)
	}

	vendorDir := strings.TrimSpace(gjson.GetBytes(data, vendorDirPath).String())
	switch {
	case vendorDir == "":
		return filepath.Join(root, domain.DefaultVendorDir), nil
	case filepath.IsAbs(vendorDir):
		return filepath.Clean(vendorDir), nil
	default:
		return filepath.Join(root, vendorDir), nil
	}
}

// Packages returns the packages listed in <vendorDir>/composer/installed.json.
// A missing file means nothing is installed yet.
func (s *Source) Packages(ctx context.Context, vendorDir string) ([]domain.Package, error) {
	path := filepath.Join(vendorDir, filepath.FromSlash(installedJSON))

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the configured vendor dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledReadFailed.Error()), "path", path)
	}

	var installed installedFile
	if err := json.Unmarshal(data, &installed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledParseFailed.Error()), "path", path)
	}

	packages := make([]domain.Package, 0, len(installed.Packages))
	for _, p := range installed.Packages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Name == "" {
			continue
		}
		packages = append(packages, domain.Package{
			Name:          strings.ToLower(p.Name),
			PrettyName:    p.Name,
			PrettyVersion: p.Version,
			Type:          p.Type,
			Extra:         p.extra(),
		})
	}

	return packages, nil
}
