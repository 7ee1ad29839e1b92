// Package renderer turns WorkLedger reports into markdown.
//
// Each report has a view type, built from the workledger values, and a main
// template in templates/ that may use shared partials.
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

// partials shared by several reports.
var eventPartials = map[string]string{"event_table": "event_table.md"}

// RenderDashboard renders the dashboard.
func RenderDashboard(d *Dashboard) string {
	return renderTemplate("dashboard", "dashboard.md", eventPartials, d)
}

// RenderProjects renders a list of projects.
func RenderProjects(l *ProjectList) string {
	return renderTemplate("projects", "projects.md", nil, l)
}

// RenderProject renders the details of a project, including its timeline.
func RenderProject(p *ProjectDetail) string {
	return renderTemplate("project", "project.md", map[string]string{"timeline_table": "timeline_table.md"}, p)
}

// RenderTimeline renders the timeline of a project.
func RenderTimeline(t *Timeline) string {
	return renderTemplate("timeline", "timeline.md", map[string]string{"timeline_table": "timeline_table.md"}, t)
}

// RenderWorkers renders a list of workers.
func RenderWorkers(l *WorkerList) string {
	return renderTemplate("workers", "workers.md", nil, l)
}

// RenderWorker renders the details of a worker.
func RenderWorker(w *WorkerDetail) string {
	return renderTemplate("worker", "worker.md", nil, w)
}

// RenderSalary renders the salary allocation report.
func RenderSalary(s *Salary) string {
	return renderTemplate("salary", "salary.md", nil, s)
}

// RenderCosts renders the cost of each project.
func RenderCosts(c *Costs) string {
	return renderTemplate("costs", "costs.md", nil, c)
}

// RenderEvents renders a list of events.
func RenderEvents(e *Events) string {
	return renderTemplate("events", "events.md", eventPartials, e)
}

// RenderCalendar renders a calendar grid and the events next to it.
func RenderCalendar(c *Calendar) string {
	return renderTemplate("calendar", "calendar.md", eventPartials, c)
}

// RenderSettings renders the settings.
func RenderSettings(s *Settings) string {
	return renderTemplate("settings", "settings.md", nil, s)
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
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
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

var funcs = template.FuncMap{
	"cell": cell,
	"join": func(items []string) string { return strings.Join(items, ", ") },
	"check": func(done bool) string {
		if done {
			return "[x]"
		}
		return "[ ]"
	},
}

// cell escapes s for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
