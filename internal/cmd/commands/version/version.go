package version

import (
	"github.com/hashicorp-forge/docnav/internal/cmd/base"
	"github.com/hashicorp-forge/docnav/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the docnav version"
}

func (c *Command) Help() string {
	return "Usage: docnav version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("docnav " + version.Version)
	return 0
}
