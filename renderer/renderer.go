// Package renderer turns ledger data into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are the helpers available in all templates.
var funcs = template.FuncMap{
	"cell": cell,
}

// cell escapes a free text so that it fits in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// RenderRecords renders a Table of records to a markdown string.
func RenderRecords(t *Table) string {
	partials := map[string]string{
		"records_table": "records_table.md",
		"records_empty": "records_empty.md",
	}
	return renderTemplate("records", "records.md", partials, t)
}

// RenderBalance renders a Balance to a markdown string.
func RenderBalance(b *Balance) string {
	partials := map[string]string{
		"balance_totals": "balance_totals.md",
	}
	return renderTemplate("balance", "balance.md", partials, b)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
