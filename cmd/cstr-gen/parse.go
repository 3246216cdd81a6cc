package main

import (
	"fmt"
	"go/token"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawManifest represents a string-constant manifest loaded from YAML.
type RawManifest struct {
	Package string     `yaml:"package"`
	Groups  []RawGroup `yaml:"groups"`
}

// RawGroup is a block of declarations sharing one visibility qualifier.
type RawGroup struct {
	Visibility string     `yaml:"visibility"` // "exported" or "unexported"
	Doc        string     `yaml:"doc"`
	Entries    []RawEntry `yaml:"entries"`
}

// RawEntry is a single name = "text" declaration.
type RawEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Doc   string `yaml:"doc"`
}

// LoadManifest reads and parses a manifest YAML file. It does not
// validate; call Validate on the result.
func LoadManifest(path string) (*RawManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m RawManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the manifest against the declaration rules. Every
// failure here corresponds to a rejection the Go compiler cannot make on
// the generated output: bad identifiers, a visibility qualifier that
// contradicts a name, duplicate names, and values with interior NUL
// bytes (which would silently truncate on the C side).
func (m *RawManifest) Validate() error {
	if m.Package != "" && !token.IsIdentifier(m.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", m.Package)
	}
	if len(m.Groups) == 0 {
		return fmt.Errorf("manifest declares no groups")
	}

	seen := make(map[string]bool)
	for gi, g := range m.Groups {
		exported, err := parseVisibility(g.Visibility)
		if err != nil {
			return fmt.Errorf("group %d: %w", gi, err)
		}
		if len(g.Entries) == 0 {
			return fmt.Errorf("group %d: no entries", gi)
		}

		for _, e := range g.Entries {
			if !token.IsIdentifier(e.Name) {
				return fmt.Errorf("group %d: %q is not a valid Go identifier", gi, e.Name)
			}
			if token.IsExported(e.Name) != exported {
				return fmt.Errorf("group %d: name %s contradicts group visibility %q",
					gi, e.Name, g.Visibility)
			}
			if seen[e.Name] {
				return fmt.Errorf("group %d: duplicate name %s", gi, e.Name)
			}
			seen[e.Name] = true

			if i := strings.IndexByte(e.Value, 0); i >= 0 {
				return fmt.Errorf("group %d: value of %s contains interior NUL at byte %d",
					gi, e.Name, i)
			}
		}
	}
	return nil
}

// parseVisibility maps the manifest qualifier to exportedness.
func parseVisibility(v string) (exported bool, err error) {
	switch v {
	case "exported":
		return true, nil
	case "unexported":
		return false, nil
	case "":
		return false, fmt.Errorf("missing visibility (want \"exported\" or \"unexported\")")
	default:
		return false, fmt.Errorf("unknown visibility %q (want \"exported\" or \"unexported\")", v)
	}
}
