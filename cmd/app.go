// Package cmd implements the wl command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/workledger"
	"github.com/etnz/workledger/auth"
	"github.com/etnz/workledger/storage"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataFlag   = flag.String("data", "", "Storage location (directory, sqlite:<file>, redis://<host>, memory:). See \"wl topic storage\".")
	configFlag = flag.String("config", "", "Path to the YAML configuration file.")
	Verbose    = flag.Bool("v", false, "Log on stderr.")
)

// Output of the commands, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// loginDelay slows down every sign in attempt.
var loginDelay = auth.DefaultDelay

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, group := range commands {
		for _, cmd := range group.cmds {
			c.Register(cmd, group.name)
		}
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}

// commands lists the wl commands by group.
var commands = []struct {
	name string
	cmds []subcommands.Command
}{
	{"projects", []subcommands.Command{&projectsCmd{}, &projectCmd{}, &addProjectCmd{}, &updateProjectCmd{}, &deleteProjectCmd{}, &timelineCmd{}}},
	{"workers", []subcommands.Command{&workersCmd{}, &workerCmd{}, &addWorkerCmd{}, &updateWorkerCmd{}, &deleteWorkerCmd{}, newAssignCmd(), newUnassignCmd()}},
	{"reports", []subcommands.Command{&dashboardCmd{}, &salaryCmd{}, &costsCmd{}, &eventsCmd{}, &calendarCmd{}}},
	{"session", []subcommands.Command{&loginCmd{}, &logoutCmd{}, &whoamiCmd{}}},
	{"data", []subcommands.Command{&settingsCmd{}, &exportCmd{}, &importCmd{}, &queryCmd{}, &resetCmd{}, &migrateCmd{}}},
	{"", []subcommands.Command{&topicCmd{}}},
}

// app holds what a command needs to run.
type app struct {
	cfg     Config
	logger  *zap.Logger
	backend storage.Backend
	store   *workledger.Store
	auth    *auth.Authenticator
}

// loadConfig returns the configuration, global flags applied.
func loadConfig() (Config, error) {
	path, required := *configFlag, true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, required = DefaultConfigPath(), false
	}
	cfg, err := LoadConfig(path, required, os.Getenv)
	if err != nil {
		return Config{}, err
	}
	if *dataFlag != "" {
		cfg.Data = *dataFlag
	}
	return cfg, nil
}

// newLogger returns a no-op logger unless verbose.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if level == "debug" {
		cfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.Level = lvl
	}
	return cfg.Build()
}

// openApp opens the storage and loads the store.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogLevel, *Verbose)
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("could not open storage %q: %w", cfg.Data, err)
	}
	logger.Debug("storage opened", zap.String("data", cfg.Data))
	store, err := workledger.Open(backend, workledger.WithLogger(logger), workledger.WithClock(cfg.Clock()))
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &app{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		store:   store,
		auth:    auth.New(backend, cfg.SessionSecret, auth.WithLogger(logger), auth.WithDelay(loginDelay)),
	}, nil
}

// Close releases the storage.
func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		fmt.Fprintf(stderr, "Error closing storage: %v\n", err)
	}
	a.logger.Sync()
}

// requireAdmin returns an error unless an administrator is signed in.
func (a *app) requireAdmin() error {
	s, err := a.auth.Current()
	if err != nil {
		return err
	}
	if !s.IsAuthenticated {
		return errors.New("sign in as an administrator first, see \"wl topic access\"")
	}
	if !s.IsAdmin() {
		return fmt.Errorf("%s is not allowed to change data", s.User.Email)
	}
	return nil
}

// currency returns the currency amounts are shown in.
func (a *app) currency() string { return a.store.Settings().Currency }

// printMarkdown renders md for the terminal, in the theme of the settings.
// md is printed as is when the output is not a terminal.
func (a *app) printMarkdown(md string) {
	if !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	style := "light"
	if a.store.Settings().Theme == workledger.ThemeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// fail prints err and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usage prints err and returns the usage error status.
func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
