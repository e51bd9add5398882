package composer

import (
	"bytes"
	"encoding/json"
)

// installedPackage is a single entry of vendor/composer/installed.json.
type installedPackage struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Type    string          `json:"type"`
	Extra   json.RawMessage `json:"extra"`
}

// installedFile accepts both layouts of installed.json: the bare array written by
// Composer 1 and the {"packages": [...]} object written by Composer 2.
type installedFile struct {
	Packages []installedPackage `json:"packages"`
}

func (f *installedFile) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &f.Packages)
	}

	type plain installedFile
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*f = installedFile(p)
	return nil
}

// extra decodes the "extra" section. PHP writes an empty section as [], which is treated as absent.
func (p installedPackage) extra() map[string]any {
	var extra map[string]any
	if err := json.Unmarshal(p.Extra, &extra); err != nil {
		return nil
	}
	return extra
}
