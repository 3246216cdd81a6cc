package main

import (
	"fmt"
	"strconv"
	"strings"
)

// cstrImport is the import path of the wrapper package the generated
// constants are built on.
const cstrImport = "github.com/cstr-tools/cstr-go/pkg/cstr"

// resolvePackage picks the package name for the generated file: the
// -package flag wins over the manifest's package field.
func resolvePackage(m *RawManifest, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if m.Package != "" {
		return m.Package, nil
	}
	return "", fmt.Errorf("no package name: set \"package\" in the manifest or pass -package")
}

// Generate renders the Go source for a manifest. The manifest is
// validated first; any rule violation aborts generation before a single
// byte of output is produced.
func Generate(m *RawManifest, pkgOverride, source string) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	pkg, err := resolvePackage(m, pkgOverride)
	if err != nil {
		return "", err
	}

	data := fileData{
		Package: pkg,
		Source:  source,
		Import:  cstrImport,
	}
	for _, g := range m.Groups {
		gd := groupData{Doc: g.Doc}
		for _, e := range g.Entries {
			doc := e.Doc
			if doc == "" {
				doc = fmt.Sprintf("is the NUL-terminated form of %q.", e.Value)
			}
			gd.Entries = append(gd.Entries, entryData{
				Name: e.Name,
				Doc:  doc,
				// Quote the value with its terminator as one constant
				// literal so the bytes land in static storage.
				Lit: strconv.Quote(e.Value + "\x00"),
			})
		}
		data.Groups = append(data.Groups, gd)
	}

	var b strings.Builder
	renderTemplate(&b, "file", data)
	return b.String(), nil
}

// DeriveManifest produces a YAML listing of the generated constants in
// manifest order, for tooling that wants to know what was emitted
// without parsing Go source.
func DeriveManifest(m *RawManifest, pkg string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "package: %q\n", pkg)
	b.WriteString("\nconstants:\n")
	for _, g := range m.Groups {
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "  - name: %q\n", e.Name)
			fmt.Fprintf(&b, "    visibility: %s\n", g.Visibility)
			fmt.Fprintf(&b, "    length: %d\n", len(e.Value))
			fmt.Fprintf(&b, "    value: %q\n", e.Value)
		}
	}
	return b.String()
}
