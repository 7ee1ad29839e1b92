package cmd

import (
	"context"
	"flag"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the company at a glance" }
func (*dashboardCmd) Usage() string {
	return `wl dashboard

  Shows the number of projects per status, the team, the monthly cost, the
  next events and the most expensive projects.
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	a.printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(a.store.Dashboard(), a.store.Today())))
	return subcommands.ExitSuccess
}

type salaryCmd struct{}

func (*salaryCmd) Name() string     { return "salary" }
func (*salaryCmd) Synopsis() string { return "show salaries and their allocation to projects" }
func (*salaryCmd) Usage() string {
	return `wl salary

  Shows each worker's salary and the allocation of each of their projects.
  See "wl topic costs".
`
}

func (*salaryCmd) SetFlags(*flag.FlagSet) {}

func (*salaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	total := workledger.M(a.store.TotalMonthlyCost(), a.currency())
	a.printMarkdown(renderer.RenderSalary(renderer.NewSalary(a.store.SalaryData(), total)))
	return subcommands.ExitSuccess
}

type costsCmd struct{}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "show the monthly cost of each project" }
func (*costsCmd) Usage() string {
	return `wl costs

  Shows the monthly salary cost of each project, broken down by worker.
  See "wl topic costs".
`
}

func (*costsCmd) SetFlags(*flag.FlagSet) {}

func (*costsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	total := workledger.M(a.store.TotalMonthlyCost(), a.currency())
	a.printMarkdown(renderer.RenderCosts(renderer.NewCosts(a.store.ProjectCosts(), total)))
	return subcommands.ExitSuccess
}
