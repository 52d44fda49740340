// Package renderer turns dashboard values into markdown reports.
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

// DashboardRenderOptions holds configuration for rendering a dashboard.
type DashboardRenderOptions struct {
	SkipPlatforms bool // Do not render the three platform tables.
	SkipCash      bool // Do not render the cash per platform table.
}

// RenderDashboard renders the Dashboard to a markdown string.
func RenderDashboard(d *Dashboard, opts DashboardRenderOptions) string {
	partials := map[string]string{
		"dashboard_title":   "dashboard_title.md",
		"dashboard_summary": "dashboard_summary.md",
		"dashboard_returns": "dashboard_returns.md",
		"dashboard_status":  "dashboard_status.md",
	}

	// An empty file name results in an empty template.
	partials["dashboard_platforms"] = ""
	if !opts.SkipPlatforms {
		partials["dashboard_platforms"] = "dashboard_platforms.md"
	}
	partials["dashboard_cash"] = ""
	if !opts.SkipCash {
		partials["dashboard_cash"] = "dashboard_cash.md"
	}

	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderStatus renders the late and defaulted investments and the upcoming payments.
func RenderStatus(s *Status) string {
	return renderTemplate("status", "status.md", nil, s)
}

// RenderCash renders the cash balances.
func RenderCash(c *Cash) string {
	return renderTemplate("cash", "cash.md", nil, c)
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
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
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
