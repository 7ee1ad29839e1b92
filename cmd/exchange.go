package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/workledger"
	"github.com/etnz/workledger/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	what   string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export data as CSV or JSON" }
func (*exportCmd) Usage() string {
	return `wl export [-what projects|workers|salary|all] [-format csv|json] [-o <file>]

  Writes the projects, the workers, the salary report, or a full backup. A
  backup is always JSON and can be loaded back with "wl import".
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "all", "What to export: projects, workers, salary or all.")
	f.StringVar(&c.format, "format", "json", "Output format: csv or json.")
	f.StringVar(&c.output, "o", "", "Output file, stdout by default.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "json" {
		return usage("unknown format %q, want csv or json", c.format)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	var buf bytes.Buffer
	if err := c.write(&buf, a.store); err != nil {
		return usage("%v", err)
	}
	if c.output == "" {
		stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0644); err != nil {
		return fail("could not write %q: %v", c.output, err)
	}
	fmt.Fprintf(stderr, "Exported %s to %s\n", c.what, c.output)
	return subcommands.ExitSuccess
}

func (c *exportCmd) write(w io.Writer, s *workledger.Store) error {
	csv := c.format == "csv"
	switch c.what {
	case "projects":
		if csv {
			return export.WriteProjectsCSV(w, s.Projects())
		}
		return export.WriteJSON(w, s.Projects())
	case "workers":
		if csv {
			return export.WriteWorkersCSV(w, s.Workers())
		}
		return export.WriteJSON(w, s.Workers())
	case "salary":
		if csv {
			return export.WriteCSV(w, export.SalaryRecords(s.SalaryData()))
		}
		return export.WriteJSON(w, export.SalaryReport{
			SalaryData:   s.SalaryData(),
			ProjectCosts: s.ProjectCosts(),
			TotalCost:    s.TotalMonthlyCost(),
		})
	case "all":
		if csv {
			return fmt.Errorf("a backup cannot be written as csv")
		}
		return export.WriteJSON(w, s.Backup(time.Now().UTC()))
	}
	return fmt.Errorf("unknown export %q, want projects, workers, salary or all", c.what)
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "load a backup" }
func (*importCmd) Usage() string {
	return `wl import <file>

  Replaces the projects and workers with those of a backup written by
  "wl export". The settings are replaced too when the backup has them.
  Requires an administrator.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := oneArg(f, "file")
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

	file, err := os.Open(name)
	if err != nil {
		return fail("%v", err)
	}
	defer file.Close()
	b, err := workledger.DecodeBackup(file)
	if err != nil {
		return fail("%v", err)
	}
	if err := a.store.Restore(b); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Imported %d projects and %d workers\n", len(b.Projects), len(b.Workers))
	return subcommands.ExitSuccess
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the data with JSONPath" }
func (*queryCmd) Usage() string {
	return `wl query <jsonpath>

  Evaluates a JSONPath expression on the full backup, e.g.

    wl query '$.projects[?(@.status=="active")].name'
`
}

func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, err := oneArg(f, "JSONPath expression")
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	val, err := query(a.store.Backup(time.Now().UTC()), path)
	if err != nil {
		return fail("%v", err)
	}
	if err := export.WriteJSON(stdout, val); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}

// query evaluates the JSONPath expression on the JSON form of v.
func query(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return val, nil
}

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "fold milestones saved by older versions into their projects" }
func (*migrateCmd) Usage() string {
	return `wl migrate

  Moves the milestones that older versions saved apart from the projects into
  the timeline of their project. Requires an administrator.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.requireAdmin(); err != nil {
		return fail("%v", err)
	}
	n, err := a.store.MigrateMilestones()
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "Migrated the timelines of %d projects\n", n)
	return subcommands.ExitSuccess
}
