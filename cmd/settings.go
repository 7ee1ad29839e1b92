package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/renderer"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	theme         string
	currency      string
	company       string
	toggleTheme   bool
	toggleSidebar bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the settings" }
func (*settingsCmd) Usage() string {
	return `wl settings [-theme light|dark] [-currency <code>] [-company <name>] [-toggle-theme] [-toggle-sidebar]

  Shows the settings. The flags change them first, which requires an
  administrator. The theme is the style of the terminal output.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "Color theme: light or dark.")
	f.StringVar(&c.currency, "currency", "", "ISO code of the currency amounts are shown in, e.g. EUR.")
	f.StringVar(&c.company, "company", "", "Name of the company.")
	f.BoolVar(&c.toggleTheme, "toggle-theme", false, "Switch between the light and dark themes.")
	f.BoolVar(&c.toggleSidebar, "toggle-sidebar", false, "Collapse or expand the sidebar.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	set := visited(f)
	if len(set) > 0 {
		if err := a.requireAdmin(); err != nil {
			return fail("%v", err)
		}
		if status := c.apply(a.store, set); status != subcommands.ExitSuccess {
			return status
		}
	}

	signed := ""
	if s, err := a.auth.Current(); err == nil && s.IsAuthenticated {
		signed = fmt.Sprintf("%s (%s)", s.User.Name, s.User.Role)
	}
	a.printMarkdown(renderer.RenderSettings(renderer.NewSettings(a.store.Settings(), signed)))
	return subcommands.ExitSuccess
}

func (c *settingsCmd) apply(s *workledger.Store, set map[string]bool) subcommands.ExitStatus {
	var u workledger.SettingsUpdate
	if set["theme"] {
		theme, err := workledger.ParseTheme(c.theme)
		if err != nil {
			return usage("%v", err)
		}
		u.Theme = &theme
	}
	if set["currency"] {
		u.Currency = &c.currency
	}
	if set["company"] {
		u.CompanyName = &c.company
	}
	if err := s.UpdateSettings(u); err != nil {
		return usage("%v", err)
	}
	if c.toggleTheme {
		if err := s.ToggleTheme(); err != nil {
			return fail("%v", err)
		}
	}
	if c.toggleSidebar {
		if err := s.ToggleSidebar(); err != nil {
			return fail("%v", err)
		}
	}
	return subcommands.ExitSuccess
}

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore the demo data and the default settings" }
func (*resetCmd) Usage() string {
	return `wl reset -yes

  Replaces every project, worker and setting with the demo company. Requires
  an administrator.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm that the current data is to be lost.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		return usage("reset erases all the data, confirm with -yes")
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.requireAdmin(); err != nil {
		return fail("%v", err)
	}
	if err := a.store.Reset(); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(stdout, "Data reset to the demo company")
	return subcommands.ExitSuccess
}
