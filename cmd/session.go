package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in" }
func (*loginCmd) Usage() string {
	return `wl login -email <email> -password <password>

  Signs in for a day. See "wl topic access".
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the account.")
	f.StringVar(&c.password, "password", "", "Password of the account.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		return usage("-email and -password are required")
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	res, err := a.auth.Login(ctx, c.email, c.password)
	if err != nil {
		return fail("%v", err)
	}
	if !res.Success {
		return fail("%s", res.Error)
	}
	fmt.Fprintf(stdout, "Signed in as %s (%s)\n", res.User.Name, res.User.Role)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out" }
func (*logoutCmd) Usage() string {
	return `wl logout

  Signs out.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	if err := a.auth.Logout(); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(stdout, "Signed out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the signed-in user" }
func (*whoamiCmd) Usage() string {
	return `wl whoami

  Shows the signed-in user and whether they may change data.
`
}

func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (*whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()
	s, err := a.auth.Current()
	if err != nil {
		return fail("%v", err)
	}
	if !s.IsAuthenticated {
		fmt.Fprintln(stdout, "Not signed in")
		return subcommands.ExitSuccess
	}
	access := "read only"
	if s.IsAdmin() {
		access = "administrator"
	}
	fmt.Fprintf(stdout, "%s <%s>, %s\n", s.User.Name, s.User.Email, access)
	return subcommands.ExitSuccess
}
