package ports

// InstallationDetector tells whether a directory is the root of a Kimai installation.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type InstallationDetector interface {
	// IsInstallation reports whether marker, relative to root, identifies an installation.
	IsInstallation(root, marker string) bool
}
