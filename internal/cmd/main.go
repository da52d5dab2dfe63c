package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/docnav/internal/cmd/base"
	"github.com/hashicorp-forge/docnav/internal/version"
)

// envPrefix scopes the environment variables docnav reads.
const envPrefix = "DOCNAV_"

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := args[0]

	log := newLogger(cliName, os.Stderr, lookupEnv)

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	// If no subcommand is provided, default to 'process'
	if len(args) == 1 {
		args = append(args, "process")
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	b := base.NewCommand(log, ui)
	b.LookupEnv = lookupEnv
	initCommands(b)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	// Run the CLI
	exitCode, err := c.Run()
	if err != nil {
		panic(err)
	}

	return exitCode
}

// lookupEnv returns DOCNAV_* variables. Empty values count as unset.
func lookupEnv(key string) (string, bool) {
	if !strings.HasPrefix(key, envPrefix) {
		return "", false
	}
	val := os.Getenv(key)
	return val, val != ""
}

// newLogger builds the root logger. DOCNAV_LOG_LEVEL sets the level and
// DOCNAV_LOG_FORMAT=json switches to JSON lines.
func newLogger(name string, output io.Writer, lookup func(string) (string, bool)) hclog.Logger {
	opts := &hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.Info,
		Output: output,
	}
	if val, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		if level := hclog.LevelFromString(val); level != hclog.NoLevel {
			opts.Level = level
		}
	}
	if val, ok := lookup(envPrefix + "LOG_FORMAT"); ok && strings.EqualFold(val, "json") {
		opts.JSONFormat = true
	}
	return hclog.New(opts)
}
