package main

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"firstLower": firstLower,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(fileTmpl))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// firstLower lowercases the first rune, for doc phrases following a name.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// --- Template data types ---

// fileData holds pre-computed data for the generated file.
type fileData struct {
	Package string
	Source  string
	Import  string
	Groups  []groupData
}

// groupData is one visibility group of constants.
type groupData struct {
	Doc     string
	Entries []entryData
}

// entryData is one generated constant. Lit is the quoted Go string
// literal, already carrying the trailing NUL escape.
type entryData struct {
	Name string
	Doc  string
	Lit  string
}

// --- Template definitions ---

const fileTmpl = `{{define "file"}}// Code generated by cstr-gen. DO NOT EDIT.
//
// Source: {{.Source}}

package {{.Package}}

import (
	"{{.Import}}"
)
{{- range .Groups}}
{{- if .Doc}}

// {{.Doc}}
{{- end}}
{{- range .Entries}}

// {{.Name}} {{firstLower .Doc}}
var {{.Name}} = cstr.Static({{.Lit}})
{{- end}}
{{- end}}
{{end}}`
