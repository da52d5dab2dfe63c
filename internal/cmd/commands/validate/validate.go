package validate

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/docnav/internal/cmd/base"
	"github.com/hashicorp-forge/docnav/pkg/sidebarconfig"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Check a sidebars file without processing it"
}

func (c *Command) Help() string {
	return `Usage: docnav validate [options]

  Loads the sidebars file and reports every invalid sidebar item.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("validate", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "sidebars.hcl",
		"[DOCNAV_CONFIG] Path to the sidebars file (.hcl, .yaml, .yml or .json)",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.ParseEnv(args, c.LookupEnv); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	file, err := sidebarconfig.Load(c.Fs, c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading sidebars file: %v", err))
		return 1
	}

	if err := sidebarconfig.Validate(file); err != nil {
		if merr, ok := err.(*multierror.Error); ok {
			for _, e := range merr.Errors {
				c.UI.Error(e.Error())
			}
		} else {
			c.UI.Error(err.Error())
		}
		return 1
	}

	c.UI.Info(fmt.Sprintf("%s is valid (%d sidebars)", c.flagConfig, len(file.Sidebars)))
	return 0
}
