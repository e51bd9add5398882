package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/kimai-plugins/internal/core/ports"
)

var _ ports.InstallationDetector = (*Detector)(nil)

// Detector identifies a Kimai installation by the presence of a marker file.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsInstallation reports whether the marker file exists below root.
func (d *Detector) IsInstallation(root, marker string) bool {
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(marker)))
	return err == nil && !info.IsDir()
}
