package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/workledger/date"
	"github.com/shopspring/decimal"
)

// listFlag is a comma separated list of values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(s string) error {
	*l = splitList(s)
	return nil
}

// splitList splits a comma separated list, dropping blank items. The result
// is never nil, so that an empty flag clears a list.
func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// visited returns the names of the flags set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// parseAmount parses a decimal amount. Malformed amounts are rejected, never
// read as zero.
func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s %q: not a number", name, s)
	}
	return d, nil
}

// parseOptionalDate parses a date relative to today. An empty string is the
// zero date.
func parseOptionalDate(name, s string, today date.Date) (date.Date, error) {
	if strings.TrimSpace(s) == "" {
		return date.Date{}, nil
	}
	d, err := date.ParseFrom(s, today)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return d, nil
}

// oneArg returns the single positional argument of f.
func oneArg(f *flag.FlagSet, what string) (string, error) {
	if f.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one %s, got %d arguments", what, f.NArg())
	}
	return f.Arg(0), nil
}
