package config

// Manifest represents the structure of the kimai-plugins.yaml configuration file.
// Every field is optional; zero values fall back to the defaults.
type Manifest struct {
	VendorDir  string   `yaml:"vendorDir"`
	PluginsDir string   `yaml:"pluginsDir"`
	LockFile   string   `yaml:"lockFile"`
	Marker     string   `yaml:"marker"`
	Suffix     *string  `yaml:"suffix"`
	Policy     string   `yaml:"policy"`
	Types      []string `yaml:"types"`
}
