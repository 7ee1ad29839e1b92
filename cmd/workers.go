package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/renderer"
	"github.com/google/subcommands"
)

type workersCmd struct {
	status string
}

func (*workersCmd) Name() string     { return "workers" }
func (*workersCmd) Synopsis() string { return "list the workers" }
func (*workersCmd) Usage() string {
	return `wl workers [-status <status>]

  Lists the workers with their salary, optionally only those in a status
  (active, on-leave, inactive).
`
}

func (c *workersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only list the workers in this status.")
}

func (c *workersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var status workledger.WorkerStatus
	if c.status != "" {
		var err error
		if status, err = workledger.ParseWorkerStatus(c.status); err != nil {
			return usage("%v", err)
		}
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	title := "Workers"
	workers := a.store.Workers()
	if status != "" {
		title = fmt.Sprintf("Workers %s", status)
		filtered := workers[:0]
		for _, w := range workers {
			if w.Status == status {
				filtered = append(filtered, w)
			}
		}
		workers = filtered
	}
	a.printMarkdown(renderer.RenderWorkers(renderer.NewWorkerList(title, workers, a.currency())))
	return subcommands.ExitSuccess
}

type workerCmd struct{}

func (*workerCmd) Name() string     { return "worker" }
func (*workerCmd) Synopsis() string { return "show a worker and their projects" }
func (*workerCmd) Usage() string {
	return `wl worker <worker id>

  Shows a worker and the share of their time spent on each project.
`
}

func (*workerCmd) SetFlags(*flag.FlagSet) {}

func (*workerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "worker id")
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	w, ok := a.store.Worker(id)
	if !ok {
		return fail("no worker %q", id)
	}
	a.printMarkdown(renderer.RenderWorker(renderer.NewWorkerDetail(w, a.store.WorkerProjects(id), a.currency())))
	return subcommands.ExitSuccess
}

// workerFlags are the editable fields of a worker.
type workerFlags struct {
	name   string
	email  string
	role   string
	skills listFlag
	salary string
	avatar string
	status string
}

func (c *workerFlags) SetFlags(f *flag.FlagSet, defaultStatus string) {
	f.StringVar(&c.name, "name", "", "Name of the worker.")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.StringVar(&c.role, "role", "", "Role in the company.")
	f.Var(&c.skills, "skills", "Comma separated skills.")
	f.StringVar(&c.salary, "salary", "", "Monthly salary.")
	f.StringVar(&c.avatar, "avatar", "", "URL of a picture.")
	f.StringVar(&c.status, "status", defaultStatus, "Status: active, on-leave or inactive.")
}

type addWorkerCmd struct {
	workerFlags
}

func (*addWorkerCmd) Name() string     { return "add-worker" }
func (*addWorkerCmd) Synopsis() string { return "hire a worker" }
func (*addWorkerCmd) Usage() string {
	return `wl add-worker -name <name> -email <email> -role <role> -salary <amount> [-skills <a,b>] [-avatar <url>] [-status <status>]

  Creates a worker, active and joined today by default. Requires an
  administrator.
`
}

func (c *addWorkerCmd) SetFlags(f *flag.FlagSet) { c.workerFlags.SetFlags(f, "active") }

func (c *addWorkerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	salary, err := parseAmount("salary", c.salary)
	if err != nil {
		return usage("%v", err)
	}
	d := workledger.WorkerDraft{
		Name:          c.name,
		Email:         c.email,
		Role:          c.role,
		Skills:        c.skills,
		MonthlySalary: salary,
		Avatar:        c.avatar,
		Status:        workledger.WorkerStatus(c.status),
	}
	if err := workledger.ValidateWorker(d); err != nil {
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
	w, err := a.store.AddWorker(d)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Created worker %s %q\n", w.ID, w.Name)
	return subcommands.ExitSuccess
}

type updateWorkerCmd struct {
	workerFlags
	joined string
}

func (*updateWorkerCmd) Name() string     { return "update-worker" }
func (*updateWorkerCmd) Synopsis() string { return "change a worker" }
func (*updateWorkerCmd) Usage() string {
	return `wl update-worker [-name <name>] [-email <email>] [-role <role>] [-salary <amount>] [-skills <a,b>] [-avatar <url>] [-status <status>] [-joined <date>] <worker id>

  Changes the given fields of a worker. Requires an administrator.
`
}

func (c *updateWorkerCmd) SetFlags(f *flag.FlagSet) {
	c.workerFlags.SetFlags(f, "")
	f.StringVar(&c.joined, "joined", "", "Date the worker joined.")
}

func (c *updateWorkerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "worker id")
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
	w, ok := a.store.Worker(id)
	if !ok {
		return fail("no worker %q", id)
	}

	set := visited(f)
	var u workledger.WorkerUpdate
	draft := w.Draft()
	if set["name"] {
		u.Name, draft.Name = &c.name, c.name
	}
	if set["email"] {
		u.Email, draft.Email = &c.email, c.email
	}
	if set["role"] {
		u.Role, draft.Role = &c.role, c.role
	}
	if set["skills"] {
		u.Skills, draft.Skills = c.skills, c.skills
	}
	if set["salary"] {
		salary, err := parseAmount("salary", c.salary)
		if err != nil {
			return usage("%v", err)
		}
		u.MonthlySalary, draft.MonthlySalary = &salary, salary
	}
	if set["avatar"] {
		u.Avatar, draft.Avatar = &c.avatar, c.avatar
	}
	if set["status"] {
		st := workledger.WorkerStatus(c.status)
		u.Status, draft.Status = &st, st
	}
	if set["joined"] {
		joined, err := parseOptionalDate("joined", c.joined, a.store.Today())
		if err != nil || joined.IsZero() {
			return usage("invalid -joined %q", c.joined)
		}
		u.JoinedAt = &joined
	}
	if err := workledger.ValidateWorker(draft); err != nil {
		return usage("%v", err)
	}
	if err := a.store.UpdateWorker(id, u); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Updated worker %s\n", id)
	return subcommands.ExitSuccess
}

type deleteWorkerCmd struct{}

func (*deleteWorkerCmd) Name() string     { return "delete-worker" }
func (*deleteWorkerCmd) Synopsis() string { return "delete a worker" }
func (*deleteWorkerCmd) Usage() string {
	return `wl delete-worker <worker id>

  Deletes a worker and removes them from their projects. Requires an
  administrator.
`
}

func (*deleteWorkerCmd) SetFlags(*flag.FlagSet) {}

func (*deleteWorkerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "worker id")
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
	if _, ok := a.store.Worker(id); !ok {
		return fail("no worker %q", id)
	}
	if err := a.store.DeleteWorker(id); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Deleted worker %s\n", id)
	return subcommands.ExitSuccess
}

// relationCmd links or unlinks a worker and a project.
type relationCmd struct {
	name     string
	synopsis string
	done     string
	apply    func(s *workledger.Store, projectID, workerID string) error
}

func (c *relationCmd) Name() string     { return c.name }
func (c *relationCmd) Synopsis() string { return c.synopsis }
func (c *relationCmd) Usage() string {
	return fmt.Sprintf(`wl %s <project id> <worker id>

  %s. Both the project and the worker are updated. Requires an
  administrator.
`, c.name, c.synopsis)
}

func (*relationCmd) SetFlags(*flag.FlagSet) {}

func (c *relationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usage("expected a project id and a worker id")
	}
	projectID, workerID := f.Arg(0), f.Arg(1)
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.requireAdmin(); err != nil {
		return fail("%v", err)
	}
	if _, ok := a.store.Project(projectID); !ok {
		return fail("no project %q", projectID)
	}
	if _, ok := a.store.Worker(workerID); !ok {
		return fail("no worker %q", workerID)
	}
	if err := c.apply(a.store, projectID, workerID); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "%s %s %s\n", workerID, c.done, projectID)
	return subcommands.ExitSuccess
}

func newAssignCmd() *relationCmd {
	return &relationCmd{name: "assign", synopsis: "assign a worker to a project", done: "assigned to", apply: (*workledger.Store).Assign}
}

func newUnassignCmd() *relationCmd {
	return &relationCmd{name: "unassign", synopsis: "remove a worker from a project", done: "removed from", apply: (*workledger.Store).Unassign}
}
