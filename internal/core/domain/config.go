package domain

import "slices"

const (
	// DefaultVendorDir is used when neither the config nor composer.json names a vendor directory.
	DefaultVendorDir = "vendor"
	// DefaultPluginsDir is the directory, relative to the root, plugins are installed into.
	DefaultPluginsDir = "var/plugins"
	// DefaultMarker is the file whose presence identifies a Kimai installation.
	DefaultMarker = "src/Constants.php"
	// DefaultSuffix is the suffix every plugin install name must carry.
	DefaultSuffix = "Bundle"
)

// DefaultPluginTypes lists the package types handled by the plugin installer.
var DefaultPluginTypes = []string{
	"kimai2-plugin",
	"kimai-plugin",
	"kimai-bundle",
}

// Config holds the settings of one installer run. Paths are relative to Root unless absolute.
type Config struct {
	Root       string
	VendorDir  string
	PluginsDir string
	LockFile   string
	Marker     string
	Convention NamingConvention
	Types      []string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:       root,
		PluginsDir: DefaultPluginsDir,
		LockFile:   LockFileName,
		Marker:     DefaultMarker,
		Convention: NamingConvention{
			Suffix: DefaultSuffix,
			Policy: PolicyStrict,
		},
		Types: slices.Clone(DefaultPluginTypes),
	}
}
