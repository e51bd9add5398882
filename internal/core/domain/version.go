package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var (
	aliasPattern   = regexp.MustCompile(`^([^,\s]+) +as +[^,\s]+$`)
	classicPattern = regexp.MustCompile(
		`(?i)^v?(\d{1,5})(\.\d+)?(\.\d+)?(\.\d+)?` +
			`[._-]?(?:(stable|beta|b|rc|alpha|a|patch|pl|p)((?:[.-]?\d+)*)?)?([.-]?dev)?$`,
	)
	branchPattern = regexp.MustCompile(`(?i)^v?(\d+)(\.(?:\d+|[x*]))?(\.(?:\d+|[x*]))?(\.(?:\d+|[x*]))?$`)
)

// Constraint is an exact-version requirement injected into a solve request.
type Constraint struct {
	Operator string
	Version  string
}

// String renders the constraint the way Composer prints it (e.g., "=1.2.0.0").
func (c Constraint) String() string {
	return c.Operator + c.Version
}

// ExactConstraint builds an "=" constraint from a recorded pretty version.
func ExactConstraint(version string) (Constraint, error) {
	normalized, err := NormalizeVersion(version)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{Operator: "=", Version: normalized}, nil
}

// NormalizeVersion converts a pretty version into Composer's normalized form:
// four numeric components plus an optional stability suffix.
// Branch names ("dev-main") are kept, build metadata is dropped.
func NormalizeVersion(version string) (string, error) {
	v := strings.TrimSpace(version)
	if m := aliasPattern.FindStringSubmatch(v); m != nil {
		v = m[1]
	}
	if idx := strings.Index(v, "+"); idx >= 0 {
		v = v[:idx]
	}

	if v == "" {
		return "", zerr.With(ErrInvalidVersion, "version", version)
	}

	lower := strings.ToLower(v)
	switch {
	case lower == "master" || lower == "trunk" || lower == "default":
		return "dev-" + v, nil
	case strings.HasPrefix(lower, "dev-"):
		return "dev-" + v[4:], nil
	}

	if m := classicPattern.FindStringSubmatch(v); m != nil {
		return normalizeClassic(m), nil
	}

	if strings.HasSuffix(lower, "-dev") || strings.HasSuffix(lower, ".dev") {
		if normalized, ok := normalizeBranch(v[:len(v)-4]); ok {
			return normalized, nil
		}
	}

	return "", zerr.With(ErrInvalidVersion, "version", version)
}

func normalizeClassic(m []string) string {
	var b strings.Builder
	b.WriteString(m[1])
	for _, part := range m[2:5] {
		if part == "" {
			part = ".0"
		}
		b.WriteString(part)
	}

	stability := strings.ToLower(m[5])
	if stability != "" && stability != "stable" {
		b.WriteString("-")
		b.WriteString(expandStability(stability))
		b.WriteString(strings.TrimLeft(m[6], ".-"))
	}
	if m[7] != "" {
		b.WriteString("-dev")
	}
	return b.String()
}

func normalizeBranch(branch string) (string, bool) {
	m := branchPattern.FindStringSubmatch(branch)
	if m == nil {
		return "", false
	}

	parts := make([]string, 0, 4)
	for i, part := range m[1:5] {
		part = strings.TrimPrefix(part, ".")
		switch {
		case part == "" && i > 0, strings.EqualFold(part, "x"), part == "*":
			part = "9999999"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ".") + "-dev", true
}

func expandStability(s string) string {
	switch s {
	case "a":
		return "alpha"
	case "b":
		return "beta"
	case "p", "pl":
		return "patch"
	case "rc":
		return "RC"
	default:
		return s
	}
}
