// Package directory loads the known-company override table. A lookup hit
// bypasses all rule-based company normalization.
package directory

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Directory maps lowercased, trimmed raw company strings to canonical
// display strings. Read-only during a cleaning run.
type Directory map[string]string

// Load reads a YAML mapping of raw name -> canonical name. Keys are
// lowercased and trimmed on load so lookups are insensitive to source
// casing. An empty path yields an empty directory.
func Load(path string) (Directory, error) {
	if path == "" {
		return Directory{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "directory: read file")
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "directory: parse yaml")
	}

	dir := make(Directory, 2*len(raw))
	for k, v := range raw {
		dir[strings.ToLower(strings.TrimSpace(k))] = v
	}
	// Canonical values map to themselves so a second normalization pass
	// returns the same value instead of re-applying the suffix rules to it.
	for _, v := range raw {
		key := strings.ToLower(strings.TrimSpace(v))
		if _, ok := dir[key]; !ok {
			dir[key] = v
		}
	}
	return dir, nil
}

// Canonical looks up the canonical form of a raw company value.
func (d Directory) Canonical(raw string) (string, bool) {
	v, ok := d[strings.ToLower(strings.TrimSpace(raw))]
	return v, ok
}
