package cmd

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/docnav/internal/cmd/base"
	"github.com/hashicorp-forge/docnav/internal/cmd/commands/process"
	"github.com/hashicorp-forge/docnav/internal/cmd/commands/validate"
	versioncmd "github.com/hashicorp-forge/docnav/internal/cmd/commands/version"
)

// Commands is the mapping of all available docnav commands.
var Commands map[string]cli.CommandFactory

func initCommands(b *base.Command) {
	Commands = map[string]cli.CommandFactory{
		"process": func() (cli.Command, error) {
			return &process.Command{Command: b}, nil
		},
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
