package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPluginName is returned when a package's install name does not end with the
	// suffix required by the naming convention.
	ErrInvalidPluginName = zerr.New("unable to install Kimai plugin, package name does not match naming convention")

	// ErrLockUnreadable is returned when the lock file exists but cannot be read.
	ErrLockUnreadable = zerr.New("Kimai lock file is not readable, fix permission")

	// ErrLockInvalid is returned when the lock file is malformed or has no plugins section.
	ErrLockInvalid = zerr.New("invalid Kimai lock file found, no plugins section")

	// ErrLockNotWritable is returned when the lock file, or the directory that should contain it,
	// cannot be written.
	ErrLockNotWritable = zerr.New("Kimai lock file cannot be written, fix permission")

	// ErrLockWriteFailed is returned when the physical write of the lock file fails.
	ErrLockWriteFailed = zerr.New("failed writing Kimai lock file")

	// ErrLockMarshalFailed is returned when the lock document cannot be encoded.
	ErrLockMarshalFailed = zerr.New("failed to marshal Kimai lock file")

	// ErrInvalidVersion is returned when a recorded version cannot be normalized into an exact constraint.
	ErrInvalidVersion = zerr.New("invalid version string")

	// ErrInvalidPolicy is returned when the naming policy is neither "strict" nor "lenient".
	ErrInvalidPolicy = zerr.New("invalid naming policy, expected 'strict' or 'lenient'")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInstalledReadFailed is returned when Composer's installed package list cannot be read.
	ErrInstalledReadFailed = zerr.New("failed to read installed packages")

	// ErrInstalledParseFailed is returned when Composer's installed package list cannot be parsed.
	ErrInstalledParseFailed = zerr.New("failed to parse installed packages")

	// ErrNoInstaller is returned when no registered installer supports a package type.
	ErrNoInstaller = zerr.New("no installer supports package type")

	// ErrEmptyPackageName is returned when a package without a name is passed to an installer.
	ErrEmptyPackageName = zerr.New("package name is empty")
)
