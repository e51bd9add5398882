// Package fs implements the filesystem-facing adapters: content hashing and installation detection.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
)

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher computes content hashes of plugin mappings using XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the XXHash of the mapping in sorted key order, formatted as 16 hex digits.
func (h *Hasher) Hash(plugins domain.PluginMap) string {
	hasher := xxhash.New()

	for _, name := range plugins.Names() {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0}) // Separator
		_, _ = hasher.WriteString(plugins[name])
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
