package renderer

import (
	"strings"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
)

// ProjectLine is a project in a list.
type ProjectLine struct {
	ID           string
	Name         string
	Status       workledger.ProjectStatus
	Technologies string
	Workers      int
	Budget       string
	Deadline     string
}

func newProjectLines(projects []workledger.Project, cur string) []ProjectLine {
	lines := make([]ProjectLine, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, ProjectLine{
			ID:           p.ID,
			Name:         p.Name,
			Status:       p.Status,
			Technologies: strings.Join(p.Technologies, ", "),
			Workers:      len(p.AssignedWorkers),
			Budget:       budget(p, cur),
			Deadline:     optional(p.Deadline),
		})
	}
	return lines
}

func budget(p workledger.Project, cur string) string {
	if p.Budget == nil {
		return "-"
	}
	return workledger.M(*p.Budget, cur).String()
}

func optional(d date.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// ProjectList is a list of projects.
type ProjectList struct {
	Title    string
	Projects []ProjectLine
}

// NewProjectList creates the view of a list of projects.
func NewProjectList(title string, projects []workledger.Project, cur string) *ProjectList {
	return &ProjectList{Title: title, Projects: newProjectLines(projects, cur)}
}

// MilestoneLine is a step of a timeline.
type MilestoneLine struct {
	ID        string
	Title     string
	Due       date.Date
	Completed bool
}

func newMilestoneLines(milestones []workledger.Milestone) []MilestoneLine {
	lines := make([]MilestoneLine, 0, len(milestones))
	for _, m := range milestones {
		lines = append(lines, MilestoneLine{ID: m.ID, Title: m.Title, Due: m.DueDate, Completed: m.Completed})
	}
	return lines
}

// Timeline is the ordered milestones of a project.
type Timeline struct {
	ProjectID  string
	Project    string
	Progress   workledger.Percent
	Milestones []MilestoneLine
}

// NewTimeline creates the timeline view of p.
func NewTimeline(p workledger.Project, milestones []workledger.Milestone) *Timeline {
	return &Timeline{
		ProjectID:  p.ID,
		Project:    p.Name,
		Progress:   workledger.Progress(milestones),
		Milestones: newMilestoneLines(milestones),
	}
}

// TeamLine is a worker of a project with the part of its salary charged to
// the project.
type TeamLine struct {
	ID   string
	Name string
	Role string
	Cost workledger.Money
}

// ProjectDetail is the full description of a project.
type ProjectDetail struct {
	ProjectLine
	Description string
	CreatedAt   date.Date
	UpdatedAt   date.Date
	MonthlyCost workledger.Money
	Team        []TeamLine
	Timeline
}

// NewProjectDetail creates the detail view of p, from its team, its cost and
// its timeline.
func NewProjectDetail(p workledger.Project, team []workledger.Worker, cost workledger.ProjectCost, milestones []workledger.Milestone, cur string) *ProjectDetail {
	costs := make(map[string]workledger.WorkerCost, len(cost.Workers))
	for _, wc := range cost.Workers {
		costs[wc.WorkerID] = wc
	}
	v := &ProjectDetail{
		ProjectLine: newProjectLines([]workledger.Project{p}, cur)[0],
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		MonthlyCost: workledger.M(cost.TotalCost, cur),
		Timeline:    *NewTimeline(p, milestones),
	}
	for _, w := range team {
		v.Team = append(v.Team, TeamLine{ID: w.ID, Name: w.Name, Role: w.Role, Cost: workledger.M(costs[w.ID].Cost, cur)})
	}
	return v
}
