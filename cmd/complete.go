package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/workledger"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the wl command line. Install it
// with COMP_INSTALL=1 wl.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"help":     {Args: predict.Set(commandNames())},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"data":   predict.Dirs("*"),
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
	}
	for _, group := range commands {
		for _, c := range group.cmds {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: argPredictor(c.Name())}
			f.VisitAll(func(fl *flag.Flag) { sub.Flags[fl.Name] = flagPredictor(fl.Name) })
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

func commandNames() []string {
	var names []string
	for _, group := range commands {
		for _, c := range group.cmds {
			names = append(names, c.Name())
		}
	}
	return names
}

// flagPredictor predicts the values of a flag from its name.
func flagPredictor(name string) complete.Predictor {
	switch name {
	case "status":
		return predict.Set{
			string(workledger.StatusPlanning), string(workledger.StatusActive), string(workledger.StatusOnHold), string(workledger.StatusCompleted),
			string(workledger.WorkerOnLeave), string(workledger.WorkerInactive),
		}
	case "theme":
		return predict.Set{string(workledger.ThemeLight), string(workledger.ThemeDark)}
	case "view":
		return predict.Set{"month", "week"}
	case "format":
		return predict.Set{"csv", "json"}
	case "what":
		return predict.Set{"projects", "workers", "salary", "all"}
	case "o":
		return predict.Files("*")
	}
	return predict.Something
}

// argPredictor predicts the positional arguments of a command.
func argPredictor(name string) complete.Predictor {
	switch name {
	case "project", "update-project", "delete-project", "timeline":
		return ids(projectIDs)
	case "worker", "update-worker", "delete-worker":
		return ids(workerIDs)
	case "assign", "unassign":
		return ids(func(s *workledger.Store) []string { return append(projectIDs(s), workerIDs(s)...) })
	case "import":
		return predict.Files("*.json")
	case "topic":
		return predict.Set{"readme", "storage", "config", "costs", "timeline", "access", "exchange"}
	}
	return predict.Nothing
}

func projectIDs(s *workledger.Store) []string {
	var list []string
	for _, p := range s.Projects() {
		list = append(list, p.ID)
	}
	return list
}

func workerIDs(s *workledger.Store) []string {
	var list []string
	for _, w := range s.Workers() {
		list = append(list, w.ID)
	}
	return list
}

// ids predicts identifiers read from the store. Nothing is predicted when the
// store cannot be opened.
func ids(list func(*workledger.Store) []string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		a, err := openApp()
		if err != nil {
			return nil
		}
		defer a.Close()
		var found []string
		for _, id := range list(a.store) {
			if strings.HasPrefix(id, prefix) {
				found = append(found, id)
			}
		}
		return found
	})
}
