package ports

import (
	"context"

	"go.trai.ch/kimai-plugins/internal/core/domain"
)

// PackageSource provides the packages the package manager resolved for an installation.
//
//go:generate mockgen -source=package_source.go -destination=mocks/mock_package_source.go -package=mocks
type PackageSource interface {
	// VendorDir returns the vendor directory of the installation rooted at root.
	VendorDir(root string) (string, error)

	// Packages returns the resolved packages listed under vendorDir, in manifest order.
	Packages(ctx context.Context, vendorDir string) ([]domain.Package, error)
}
