package domain

import "strings"

// Package describes a package handed to an installer by the host runtime.
type Package struct {
	// Name is the canonical, lower-cased package name (e.g., "kimai/invoice-bundle").
	Name string

	// PrettyName is the human-facing package name (e.g., "kimai/InvoiceBundle").
	PrettyName string

	// PrettyVersion is the installed version as the author wrote it (e.g., "v1.2.0").
	PrettyVersion string

	// Type is the declared package type tag (e.g., "kimai-plugin").
	Type string

	// Extra holds the free-form "extra" section of the package manifest.
	Extra map[string]any
}

// InstallName returns the directory name the package is installed under.
// An explicit extra.kimai.name wins, otherwise the segment after the last "/"
// of the pretty name is used.
func (p Package) InstallName() string {
	if name := p.overrideName(); name != "" {
		return name
	}

	pretty := p.PrettyName
	if pretty == "" {
		pretty = p.Name
	}
	if idx := strings.LastIndex(pretty, "/"); idx >= 0 {
		return pretty[idx+1:]
	}
	return pretty
}

func (p Package) overrideName() string {
	section, ok := p.Extra["kimai"].(map[string]any)
	if !ok {
		return ""
	}
	name, ok := section["name"].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(name)
}
