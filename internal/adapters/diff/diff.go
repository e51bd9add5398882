// Package diff renders plugin mapping changes as unified diffs using go-difflib.
package diff

import (
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultContext is the number of context lines shown around each change.
const DefaultContext = 3

var _ ports.Differ = (*Differ)(nil)

// Differ implements ports.Differ.
type Differ struct {
	Context int
}

// NewDiffer creates a Differ with DefaultContext lines of context.
func NewDiffer() *Differ {
	return &Differ{Context: DefaultContext}
}

// Diff renders one "name: version" line per plugin and returns the unified diff of both listings.
func (d *Differ) Diff(fromName, toName string, from, to domain.PluginMap) (string, error) {
	u := difflib.UnifiedDiff{
		A:        lines(from),
		B:        lines(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  d.Context,
	}

	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", zerr.Wrap(err, "failed to render plugin diff")
	}
	return s, nil
}

func lines(plugins domain.PluginMap) []string {
	names := plugins.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		var b strings.Builder
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(plugins[name])
		b.WriteString("\n")
		out = append(out, b.String())
	}
	return out
}
