package sidebar

import "context"

// NumberPrefixParser splits an optional number prefix off a file or
// directory name, e.g. "02-guides" -> ("guides", 2, true). Names without a
// prefix come back unchanged with ok set to false.
type NumberPrefixParser func(name string) (filename string, prefix int, ok bool)

// GeneratorDoc is the read-only view of a document handed to generators.
type GeneratorDoc struct {
	ID              string
	FrontMatter     map[string]any
	Source          string
	SourceDirName   string
	SidebarPosition *float64
}

// GeneratorVersion is the read-only view of the content version handed to
// generators.
type GeneratorVersion struct {
	VersionName string
	ContentPath string
}

// Options are the sidebar options generators must honour.
type Options struct {
	SidebarCollapsible bool `mapstructure:"sidebar_collapsible"`
	SidebarCollapsed   bool `mapstructure:"sidebar_collapsed"`
}

// GeneratorArgs is everything a Generator receives for one autogenerated
// item.
type GeneratorArgs struct {
	Item               *AutogeneratedItem
	NumberPrefixParser NumberPrefixParser
	// DefaultGenerator lets custom generators wrap or post-process the
	// built-in behaviour.
	DefaultGenerator Generator
	Docs             []GeneratorDoc
	Version          GeneratorVersion
	Options          Options
}

// Generator expands an autogenerated item into concrete items. The returned
// items may contain categories and further autogenerated items; they are
// processed again before being spliced into the sidebar.
//
// Generators are called concurrently, once per autogenerated item. Every
// call of a run shares the same Docs slice and FrontMatter maps, and Item
// points into the caller's tree, so implementations must be safe for
// concurrent use and must not modify args.
type Generator func(ctx context.Context, args GeneratorArgs) ([]Item, error)
