// Package base holds the pieces shared by every docnav subcommand.
package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Command is embedded by every subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the filesystem configuration and content are read from.
	Fs afero.Fs

	// LookupEnv resolves environment variables for flags. Nil disables
	// environment fallbacks.
	LookupEnv func(key string) (string, bool)
}

// NewCommand creates a base command on the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}
}

// FlagSet wraps flag.FlagSet with help rendering for cli.Command.Help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned, not printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: f}
}

// ParseEnv parses args, then fills every flag that was not given on the
// command line from the variable named in its usage, as in
// "[DOCNAV_STORE] ...".
func (f *FlagSet) ParseEnv(args []string, lookup func(string) (string, bool)) error {
	if err := f.Parse(args); err != nil {
		return err
	}
	if lookup == nil {
		return nil
	}

	given := map[string]bool{}
	f.Visit(func(fl *flag.Flag) {
		given[fl.Name] = true
	})

	var err error
	f.VisitAll(func(fl *flag.Flag) {
		if err != nil || given[fl.Name] {
			return
		}
		key := envKey(fl.Usage)
		if key == "" {
			return
		}
		if val, ok := lookup(key); ok {
			if setErr := f.Set(fl.Name, val); setErr != nil {
				err = fmt.Errorf("invalid value %q for %s: %w", val, key, setErr)
			}
		}
	})
	return err
}

// envKey extracts the variable name from a "[NAME] description" usage.
func envKey(usage string) string {
	if !strings.HasPrefix(usage, "[") {
		return ""
	}
	end := strings.Index(usage, "]")
	if end < 2 {
		return ""
	}
	return usage[1:end]
}

// Help renders the flags in the layout used by the command help texts.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}
