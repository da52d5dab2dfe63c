package process

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docnav/internal/cmd/base"
	"github.com/hashicorp-forge/docnav/pkg/database"
	"github.com/hashicorp-forge/docnav/pkg/docs"
	"github.com/hashicorp-forge/docnav/pkg/models"
	"github.com/hashicorp-forge/docnav/pkg/sidebar"
	"github.com/hashicorp-forge/docnav/pkg/sidebar/generator"
	"github.com/hashicorp-forge/docnav/pkg/sidebar/processor"
	"github.com/hashicorp-forge/docnav/pkg/sidebarconfig"
)

type Command struct {
	*base.Command

	flagConfig                string
	flagContentPath           string
	flagVersionName           string
	flagOut                   string
	flagStore                 string
	flagDisableNumberPrefixes bool
}

func (c *Command) Synopsis() string {
	return "Resolve sidebars into renderable navigation trees"
}

func (c *Command) Help() string {
	return `Usage: docnav process [options]

  Loads the sidebars file and the docs of its content version, expands every
  autogenerated item and writes the processed sidebars as JSON.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("process", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "sidebars.hcl",
		"[DOCNAV_CONFIG] Path to the sidebars file (.hcl, .yaml, .yml or .json)",
	)
	f.StringVar(
		&c.flagContentPath, "content-path", "",
		"[DOCNAV_CONTENT_PATH] Docs directory, overrides the file's version block",
	)
	f.StringVar(
		&c.flagVersionName, "version-name", "",
		"Content version name, overrides the file's version block",
	)
	f.StringVar(
		&c.flagOut, "out", "",
		"Write the processed sidebars to this file instead of stdout",
	)
	f.StringVar(
		&c.flagStore, "store", "",
		"[DOCNAV_STORE] SQLite database to record sidebar snapshots in",
	)
	f.BoolVar(
		&c.flagDisableNumberPrefixes, "disable-number-prefixes", false,
		"Keep number prefixes such as \"01-\" in ids and labels",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.ParseEnv(args, c.LookupEnv); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := sidebarconfig.Load(c.Fs, c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading sidebars file: %v", err))
		return 1
	}
	if err := sidebarconfig.Validate(file); err != nil {
		c.UI.Error(fmt.Sprintf("invalid sidebars file: %v", err))
		return 1
	}

	version := file.ContentVersion()
	if c.flagContentPath != "" {
		version.ContentPath = c.flagContentPath
	}
	if c.flagVersionName != "" {
		version.VersionName = c.flagVersionName
	}

	parser := sidebar.NumberPrefixParser(generator.DefaultNumberPrefixParser)
	if c.flagDisableNumberPrefixes {
		parser = generator.DisabledNumberPrefixParser
	}

	loader := docs.NewLoader(c.Fs,
		docs.WithLogger(c.Log.Named("docs")),
		docs.WithNumberPrefixParser(parser),
	)
	versionDocs, err := loader.Load(ctx, version)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading docs: %v", err))
		return 1
	}

	gen := generator.New(
		generator.WithFs(c.Fs),
		generator.WithLogger(c.Log.Named("generator")),
	)
	p, err := processor.New(
		processor.WithLogger(c.Log.Named("processor")),
		processor.WithDefaultGenerator(gen.Generate),
		processor.WithNumberPrefixParser(parser),
		processor.WithDocs(versionDocs),
		processor.WithVersion(version),
		processor.WithOptions(file.GeneratorOptions()),
	)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating processor: %v", err))
		return 1
	}

	processed, err := p.ProcessSidebars(ctx, file.UnprocessedSidebars())
	if err != nil {
		c.Log.Error("error processing sidebars", "error", err)
		c.UI.Error(fmt.Sprintf("error processing sidebars: %v", err))
		return 1
	}

	if err := c.summarize(processed); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if c.flagStore != "" {
		runID, err := c.store(c.flagStore, version.VersionName, processed)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error storing sidebar snapshots: %v", err))
			return 1
		}
		c.Log.Info("stored sidebar snapshots", "run_id", runID, "store", c.flagStore)
	}

	out, err := json.MarshalIndent(processed, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding sidebars: %v", err))
		return 1
	}

	if c.flagOut == "" {
		c.UI.Output(string(out))
		return 0
	}
	if err := afero.WriteFile(c.Fs, c.flagOut, append(out, '\n'), 0o644); err != nil {
		c.UI.Error(fmt.Sprintf("error writing %s: %v", c.flagOut, err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("Wrote %d sidebars to %s", len(processed), c.flagOut))
	return 0
}

// store records one snapshot per processed sidebar under a new run id.
func (c *Command) store(dsn, versionName string, processed sidebar.Sidebars) (uuid.UUID, error) {
	db, err := database.Connect(database.Config{Path: dsn}, c.Log.Named("store"))
	if err != nil {
		return uuid.Nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return uuid.Nil, err
	}
	defer sqlDB.Close()

	if err := models.Migrate(db); err != nil {
		return uuid.Nil, fmt.Errorf("migrating store: %w", err)
	}

	names := sortedNames(processed)

	runID := uuid.New()
	snapshots := make([]*models.SidebarSnapshot, 0, len(names))
	for _, name := range names {
		snapshots = append(snapshots, models.NewSidebarSnapshot(runID, versionName, name, processed[name]))
	}
	if err := models.CreateSidebarSnapshots(db, snapshots); err != nil {
		return uuid.Nil, err
	}
	return runID, nil
}

// summarize logs the docs each sidebar links to and rejects trees that
// still hold autogenerated items.
func (c *Command) summarize(processed sidebar.Sidebars) error {
	names := sortedNames(processed)
	for _, name := range names {
		items := processed[name]
		if sidebar.ContainsAutogenerated(items) {
			return fmt.Errorf("sidebar %q still contains autogenerated items", name)
		}
		ids := sidebar.CollectDocIDs(items)
		c.Log.Debug("sidebar summary", "sidebar", name, "docs", len(ids), "doc_ids", ids)
	}
	c.Log.Info("processed sidebars", "count", len(names))
	return nil
}

func sortedNames(processed sidebar.Sidebars) []string {
	names := make([]string, 0, len(processed))
	for name := range processed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
