package processor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/docnav/pkg/docs"
	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

// Processor turns declared sidebars into renderable ones: autogenerated
// items are expanded through a generator, categories are processed
// recursively, and inconsistent items are fixed afterwards.
type Processor struct {
	logger             hclog.Logger
	generator          sidebar.Generator
	defaultGenerator   sidebar.Generator
	numberPrefixParser sidebar.NumberPrefixParser
	docs               []*docs.Doc
	version            *docs.Version
	options            sidebar.Options
}

// Option is a functional option for creating a Processor.
type Option func(*Processor)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithGenerator sets the generator used for autogenerated items. Defaults to
// the default generator.
func WithGenerator(gen sidebar.Generator) Option {
	return func(p *Processor) {
		p.generator = gen
	}
}

// WithDefaultGenerator sets the generator exposed to custom generators as
// their fallback.
func WithDefaultGenerator(gen sidebar.Generator) Option {
	return func(p *Processor) {
		p.defaultGenerator = gen
	}
}

// WithNumberPrefixParser sets the parser handed to generators.
func WithNumberPrefixParser(parser sidebar.NumberPrefixParser) Option {
	return func(p *Processor) {
		p.numberPrefixParser = parser
	}
}

// WithDocs sets the documents of the version being processed.
func WithDocs(d []*docs.Doc) Option {
	return func(p *Processor) {
		p.docs = d
	}
}

// WithVersion sets the content version being processed.
func WithVersion(v *docs.Version) Option {
	return func(p *Processor) {
		p.version = v
	}
}

// WithOptions sets the sidebar options handed to generators.
func WithOptions(opts sidebar.Options) Option {
	return func(p *Processor) {
		p.options = opts
	}
}

// New creates a new sidebar processor.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{}

	for _, opt := range opts {
		opt(p)
	}

	if p.defaultGenerator == nil {
		return nil, errors.New("default generator is required")
	}
	if p.version == nil {
		return nil, errors.New("version is required")
	}
	if p.generator == nil {
		p.generator = p.defaultGenerator
	}
	if p.numberPrefixParser == nil {
		return nil, errors.New("number prefix parser is required")
	}
	if p.logger == nil {
		p.logger = hclog.NewNullLogger()
	}

	return p, nil
}

// ProcessSidebars processes every sidebar concurrently. Either every sidebar
// succeeds and the result has exactly the input's names, or the first
// failure is returned and no result at all.
func (p *Processor) ProcessSidebars(ctx context.Context, sidebars sidebar.Sidebars) (sidebar.Sidebars, error) {
	names := make([]string, 0, len(sidebars))
	for name := range sidebars {
		names = append(names, name)
	}
	sort.Strings(names)

	p.logger.Info("processing sidebars", "count", len(names))
	startTime := time.Now()

	processed, err := mapOrdered(names, func(name string) (sidebar.Sidebar, error) {
		s, err := p.ProcessSidebar(ctx, sidebars[name])
		if err != nil {
			return nil, fmt.Errorf("sidebar %q: %w", name, err)
		}
		p.logger.Debug("processed sidebar", "sidebar", name, "items", len(s))
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	result := make(sidebar.Sidebars, len(names))
	for i, name := range names {
		result[name] = processed[i]
	}

	p.logger.Info("sidebars processed", "count", len(result), "duration", time.Since(startTime))
	return result, nil
}

// ProcessSidebar expands every autogenerated item of a single sidebar and
// fixes inconsistent items in the result.
func (p *Processor) ProcessSidebar(ctx context.Context, unprocessed sidebar.Sidebar) (sidebar.Sidebar, error) {
	run := &sidebarRun{
		Processor: p,
		ctx:       ctx,
		summaries: sync.OnceValues(p.generatorDocsAndVersion),
	}

	processed, err := run.processItems(unprocessed)
	if err != nil {
		return nil, err
	}
	return sidebar.FixSidebar(processed), nil
}

// sidebarRun is the state of one ProcessSidebar call. The generator views
// of docs and version are computed at most once per run, on the first
// autogenerated item.
type sidebarRun struct {
	*Processor
	ctx       context.Context
	summaries func() ([]sidebar.GeneratorDoc, sidebar.GeneratorVersion)
}

func (r *sidebarRun) processItems(items []sidebar.Item) ([]sidebar.Item, error) {
	if items == nil {
		return nil, nil
	}
	processed, err := flatMapOrdered(items, r.processItem)
	if err != nil {
		return nil, err
	}
	return processed, nil
}

func (r *sidebarRun) processItem(item sidebar.Item) ([]sidebar.Item, error) {
	switch v := item.(type) {
	case *sidebar.CategoryItem:
		category, err := r.processCategory(v)
		if err != nil {
			return nil, err
		}
		return []sidebar.Item{category}, nil
	case *sidebar.AutogeneratedItem:
		return r.processAutogenerated(v)
	default:
		return []sidebar.Item{item}, nil
	}
}

func (r *sidebarRun) processCategory(category *sidebar.CategoryItem) (*sidebar.CategoryItem, error) {
	items, err := r.processItems(category.Items)
	if err != nil {
		return nil, err
	}
	processed := *category
	processed.Items = items
	return &processed, nil
}

func (r *sidebarRun) processAutogenerated(item *sidebar.AutogeneratedItem) ([]sidebar.Item, error) {
	genDocs, genVersion := r.summaries()

	r.logger.Debug("generating sidebar items", "dir_name", item.DirName)
	generated, err := r.generator(r.ctx, sidebar.GeneratorArgs{
		Item:               item,
		NumberPrefixParser: r.numberPrefixParser,
		DefaultGenerator:   r.defaultGenerator,
		Docs:               genDocs,
		Version:            genVersion,
		Options:            r.options,
	})
	if err != nil {
		return nil, fmt.Errorf("generating items for %q: %w", item.DirName, err)
	}

	// Generated items can contain categories and autogenerated items of
	// their own.
	return r.processItems(generated)
}

func (p *Processor) generatorDocsAndVersion() ([]sidebar.GeneratorDoc, sidebar.GeneratorVersion) {
	return toGeneratorDocs(p.docs), toGeneratorVersion(p.version)
}
