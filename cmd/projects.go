package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/renderer"
	"github.com/google/subcommands"
)

type projectsCmd struct {
	status string
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list the projects" }
func (*projectsCmd) Usage() string {
	return `wl projects [-status <status>]

  Lists the projects, optionally only those in a status (active, completed,
  on-hold, planning).
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only list the projects in this status.")
}

func (c *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var status workledger.ProjectStatus
	if c.status != "" {
		var err error
		if status, err = workledger.ParseProjectStatus(c.status); err != nil {
			return usage("%v", err)
		}
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	title := "Projects"
	projects := a.store.Projects()
	if status != "" {
		title = fmt.Sprintf("Projects %s", status)
		filtered := projects[:0]
		for _, p := range projects {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}
	a.printMarkdown(renderer.RenderProjects(renderer.NewProjectList(title, projects, a.currency())))
	return subcommands.ExitSuccess
}

type projectCmd struct{}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "show a project with its team, cost and timeline" }
func (*projectCmd) Usage() string {
	return `wl project <project id>

  Shows a project, the workers assigned to it with what they cost, and its
  timeline.
`
}

func (*projectCmd) SetFlags(*flag.FlagSet) {}

func (*projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "project id")
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	p, ok := a.store.Project(id)
	if !ok {
		return fail("no project %q", id)
	}
	var cost workledger.ProjectCost
	for _, c := range a.store.ProjectCosts() {
		if c.ProjectID == id {
			cost = c
		}
	}
	timeline, _ := a.store.Timeline(id)
	a.printMarkdown(renderer.RenderProject(renderer.NewProjectDetail(p, a.store.ProjectWorkers(id), cost, timeline, a.currency())))
	return subcommands.ExitSuccess
}

// projectFlags are the editable fields of a project.
type projectFlags struct {
	name         string
	description  string
	status       string
	technologies listFlag
	budget       string
	deadline     string
}

func (c *projectFlags) SetFlags(f *flag.FlagSet, defaultStatus string) {
	f.StringVar(&c.name, "name", "", "Name of the project.")
	f.StringVar(&c.description, "description", "", "Description of the project.")
	f.StringVar(&c.status, "status", defaultStatus, "Status: active, completed, on-hold or planning.")
	f.Var(&c.technologies, "tech", "Comma separated technologies.")
	f.StringVar(&c.budget, "budget", "", "Budget of the project, empty for none.")
	f.StringVar(&c.deadline, "deadline", "", "Deadline, e.g. 2026-6-30 or +3m.")
}

type addProjectCmd struct {
	projectFlags
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "create a project" }
func (*addProjectCmd) Usage() string {
	return `wl add-project -name <name> [-description <text>] [-status <status>] [-tech <a,b>] [-budget <amount>] [-deadline <date>]

  Creates a project, planning by default. Requires an administrator.
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) { c.projectFlags.SetFlags(f, "planning") }

func (c *addProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.requireAdmin(); err != nil {
		return fail("%v", err)
	}

	d := workledger.ProjectDraft{
		Name:         c.name,
		Description:  c.description,
		Status:       workledger.ProjectStatus(c.status),
		Technologies: c.technologies,
	}
	if c.budget != "" {
		b, err := parseAmount("budget", c.budget)
		if err != nil {
			return usage("%v", err)
		}
		d.Budget = &b
	}
	if d.Deadline, err = parseOptionalDate("deadline", c.deadline, a.store.Today()); err != nil {
		return usage("%v", err)
	}
	if err := workledger.ValidateProject(d); err != nil {
		return usage("%v", err)
	}
	p, err := a.store.AddProject(d)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Created project %s %q\n", p.ID, p.Name)
	return subcommands.ExitSuccess
}

type updateProjectCmd struct {
	projectFlags
}

func (*updateProjectCmd) Name() string     { return "update-project" }
func (*updateProjectCmd) Synopsis() string { return "change a project" }
func (*updateProjectCmd) Usage() string {
	return `wl update-project [-name <name>] [-description <text>] [-status <status>] [-tech <a,b>] [-budget <amount>] [-deadline <date>] <project id>

  Changes the given fields of a project. Requires an administrator.
`
}

func (c *updateProjectCmd) SetFlags(f *flag.FlagSet) { c.projectFlags.SetFlags(f, "") }

func (c *updateProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "project id")
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.requireAdmin(); err != nil {
		return fail("%v", err)
	}
	p, ok := a.store.Project(id)
	if !ok {
		return fail("no project %q", id)
	}

	set := visited(f)
	var u workledger.ProjectUpdate
	if set["name"] {
		u.Name = &c.name
	}
	if set["description"] {
		u.Description = &c.description
	}
	if set["status"] {
		st := workledger.ProjectStatus(c.status)
		u.Status = &st
	}
	if set["tech"] {
		u.Technologies = c.technologies
	}
	if set["budget"] {
		b, err := parseAmount("budget", c.budget)
		if err != nil {
			return usage("%v", err)
		}
		u.Budget = &b
	}
	if set["deadline"] {
		d, err := parseOptionalDate("deadline", c.deadline, a.store.Today())
		if err != nil {
			return usage("%v", err)
		}
		u.Deadline = &d
	}

	// validate the project as it would be.
	draft := p.Draft()
	if u.Name != nil {
		draft.Name = *u.Name
	}
	if u.Status != nil {
		draft.Status = *u.Status
	}
	if u.Technologies != nil {
		draft.Technologies = u.Technologies
	}
	if u.Budget != nil {
		draft.Budget = u.Budget
	}
	if err := workledger.ValidateProject(draft); err != nil {
		return usage("%v", err)
	}
	if err := a.store.UpdateProject(id, u); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Updated project %s\n", id)
	return subcommands.ExitSuccess
}

type deleteProjectCmd struct{}

func (*deleteProjectCmd) Name() string     { return "delete-project" }
func (*deleteProjectCmd) Synopsis() string { return "delete a project" }
func (*deleteProjectCmd) Usage() string {
	return `wl delete-project <project id>

  Deletes a project with its timeline, and removes it from its workers.
  Requires an administrator.
`
}

func (*deleteProjectCmd) SetFlags(*flag.FlagSet) {}

func (*deleteProjectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "project id")
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.requireAdmin(); err != nil {
		return fail("%v", err)
	}
	if _, ok := a.store.Project(id); !ok {
		return fail("no project %q", id)
	}
	if err := a.store.DeleteProject(id); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Deleted project %s\n", id)
	return subcommands.ExitSuccess
}
