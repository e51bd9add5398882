package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// NamingPolicy decides what happens to a package whose install name breaks the naming convention.
type NamingPolicy string

const (
	// PolicyStrict rejects the package with ErrInvalidPluginName.
	PolicyStrict NamingPolicy = "strict"
	// PolicyLenient installs the package to its default path and logs a warning.
	PolicyLenient NamingPolicy = "lenient"
)

// ParsePolicy converts a config value into a NamingPolicy. An empty value means strict.
func ParsePolicy(s string) (NamingPolicy, error) {
	switch NamingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return "", zerr.With(ErrInvalidPolicy, "policy", s)
	}
}

// NamingConvention is the rule plugin install names have to follow.
type NamingConvention struct {
	Suffix string
	Policy NamingPolicy
}

// Validate reports whether name ends with the required suffix.
func (c NamingConvention) Validate(name string) bool {
	return name != "" && strings.HasSuffix(name, c.Suffix)
}
