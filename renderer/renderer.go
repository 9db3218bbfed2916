// Package renderer turns holdings and allocations into markdown reports and
// charts.
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

// RenderHoldings renders the Holdings struct to a markdown string.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_title": "holdings_title.md",
		"holdings_group": "holdings_group.md",
		"holdings_total": "holdings_total.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}

// RenderAllocation renders the Allocation struct to a markdown string.
func RenderAllocation(a *Allocation) string {
	partials := map[string]string{
		"allocation_title":  "allocation_title.md",
		"allocation_slices": "allocation_slices.md",
	}
	return renderTemplate("allocation", "allocation.md", partials, a)
}

// RenderGroups renders the list of grouping axes.
func RenderGroups(groups []Group) string {
	return renderTemplate("groups", "groups.md", nil, groups)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
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
