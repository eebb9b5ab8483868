// Package renderer turns sellerbook reports into markdown strings.
//
// Tabular reports assembled from several sections go through
// text/template files embedded next to this package, so the layout can
// be reviewed and golden-tested as plain markdown. Smaller one-shot
// reports are built programmatically with the markdown builder.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/csontaka/sellerbook"
)

//go:embed *.md
var templates embed.FS

// RenderSummary renders the monthly summary to a markdown string.
func RenderSummary(s *sellerbook.Summary) string {
	partials := map[string]string{
		"summary_title":  "summary_title.md",
		"summary_rows":   "summary_rows.md",
		"summary_totals": "summary_totals.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		// An empty file name is a valid case, resulting in an empty template.
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
