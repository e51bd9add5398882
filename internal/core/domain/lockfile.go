package domain

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"time"
)

// LockFileName is the default name of the plugin lock file at the application root.
const LockFileName = "kimai-plugins.lock"

// LockReadme holds the fixed notice written at the top of every lock file.
var LockReadme = []string{
	"This file locks all installed Kimai plugins.",
	"Read more about it at https://www.kimai.org/documentation/plugins.html",
	"This file is generated automatically, do not edit it manually!",
}

// PluginMap maps package names to the pinned version string.
type PluginMap map[string]string

// Merge returns a new map holding every entry of m overwritten by the entries of installed.
// Entries not present in installed are retained; nothing is ever pruned.
func (m PluginMap) Merge(installed PluginMap) PluginMap {
	merged := make(PluginMap, len(m)+len(installed))
	maps.Copy(merged, m)
	maps.Copy(merged, installed)
	return merged
}

// Names returns the package names in sorted order.
func (m PluginMap) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// UnmarshalJSON accepts an object as well as the empty array that PHP writes
// for an empty associative array.
func (m *PluginMap) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("[]")) {
		*m = PluginMap{}
		return nil
	}

	var raw map[string]string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	*m = raw
	return nil
}

// Lockfile is the document persisted as kimai-plugins.lock.
type Lockfile struct {
	Readme      []string  `json:"readme"`
	Time        string    `json:"time"`
	ContentHash string    `json:"content-hash"`
	Plugins     PluginMap `json:"plugins"`
}

// NewLockfile builds a lock document for the given mapping and content hash.
// The timestamp is rendered in RFC 3339, matching PHP's DATE_ATOM.
func NewLockfile(plugins PluginMap, contentHash string, now time.Time) *Lockfile {
	return &Lockfile{
		Readme:      slices.Clone(LockReadme),
		Time:        now.Format(time.RFC3339),
		ContentHash: contentHash,
		Plugins:     plugins,
	}
}
