// Package generator implements the default expansion of autogenerated
// sidebar items: the docs found under the item's directory become doc
// items, and every sub-directory becomes a category.
package generator

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

// ErrNoDocsFound is returned when an autogenerated item's directory holds no
// docs.
var ErrNoDocsFound = errors.New("no docs found")

// Generator is the default sidebar items generator.
type Generator struct {
	fs     afero.Fs
	logger hclog.Logger
}

// Option is a functional option for creating a Generator.
type Option func(*Generator)

// WithFs sets the filesystem category metadata files are read from.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a default generator reading from the OS filesystem unless
// another one is given.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.logger == nil {
		g.logger = hclog.NewNullLogger()
	}
	return g
}

// Generate implements sidebar.Generator.
func (g *Generator) Generate(ctx context.Context, args sidebar.GeneratorArgs) ([]sidebar.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if args.Item == nil {
		return nil, errors.New("autogenerated item is required")
	}

	parser := args.NumberPrefixParser
	if parser == nil {
		parser = DefaultNumberPrefixParser
	}

	dir := cleanDirName(args.Item.DirName)
	root := &dirNode{path: dir}
	found := 0
	for _, doc := range sortedDocs(args.Docs) {
		rel, ok := relativeDir(dir, cleanDirName(doc.SourceDirName))
		if !ok {
			continue
		}
		root.add(rel, doc)
		found++
	}
	if found == 0 {
		return nil, fmt.Errorf("%w in directory %q: can't auto-generate a sidebar", ErrNoDocsFound, args.Item.DirName)
	}

	g.logger.Debug("generating items", "dir_name", dir, "docs", found)

	b := &builder{
		fs:      g.fs,
		parser:  parser,
		version: args.Version,
		options: args.Options,
	}
	return b.items(root, "")
}

type dirNode struct {
	path    string
	docs    []sidebar.GeneratorDoc
	subdirs []*dirNode
	byName  map[string]*dirNode
}

func (n *dirNode) add(rel string, doc sidebar.GeneratorDoc) {
	if rel == "" {
		n.docs = append(n.docs, doc)
		return
	}

	name, rest, _ := strings.Cut(rel, "/")
	child, ok := n.byName[name]
	if !ok {
		if n.byName == nil {
			n.byName = make(map[string]*dirNode)
		}
		child = &dirNode{path: joinDir(n.path, name)}
		n.byName[name] = child
		n.subdirs = append(n.subdirs, child)
	}
	child.add(rest, doc)
}

type builder struct {
	fs      afero.Fs
	parser  sidebar.NumberPrefixParser
	version sidebar.GeneratorVersion
	options sidebar.Options
}

// entry is an item waiting to be ordered among its siblings.
type entry struct {
	item     sidebar.Item
	name     string
	position *float64
}

// items builds the items of a directory, leaving out the doc with id
// skipID, which is used as the category link instead.
func (b *builder) items(n *dirNode, skipID string) ([]sidebar.Item, error) {
	entries := make([]entry, 0, len(n.docs)+len(n.subdirs))

	for _, doc := range n.docs {
		if doc.ID == skipID {
			continue
		}
		item, err := docItem(doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{
			item:     item,
			name:     docFileName(doc),
			position: doc.SidebarPosition,
		})
	}

	for _, sub := range n.subdirs {
		e, err := b.category(sub)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	sortEntries(entries)

	items := make([]sidebar.Item, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items, nil
}

func (b *builder) category(n *dirNode) (entry, error) {
	meta, err := readCategoryMetadata(b.fs, b.version.ContentPath, n.path)
	if err != nil {
		return entry{}, err
	}
	if meta == nil {
		meta = &CategoryMetadata{}
	}

	dirName := path.Base(n.path)
	cleanName, prefix, hasPrefix := b.parser(dirName)

	label := meta.Label
	if label == "" {
		label = cleanName
	}

	position := meta.Position
	if position == nil && hasPrefix {
		p := float64(prefix)
		position = &p
	}

	collapsible := b.options.SidebarCollapsible
	if meta.Collapsible != nil {
		collapsible = *meta.Collapsible
	}
	collapsed := b.options.SidebarCollapsed
	if meta.Collapsed != nil {
		collapsed = *meta.Collapsed
	}

	link, indexDocID := b.categoryLink(n, meta, label, cleanName)

	items, err := b.items(n, indexDocID)
	if err != nil {
		return entry{}, err
	}

	return entry{
		item: &sidebar.CategoryItem{
			Presentation: sidebar.Presentation{
				ClassName:   meta.ClassName,
				CustomProps: meta.CustomProps,
			},
			Label:       label,
			Items:       items,
			Collapsible: collapsible,
			Collapsed:   collapsed,
			Link:        link,
			Description: meta.Description,
		},
		name:     dirName,
		position: position,
	}, nil
}

// categoryLink returns the link of a generated category and, when an index
// doc is used as the link, that doc's id.
func (b *builder) categoryLink(n *dirNode, meta *CategoryMetadata, label, cleanName string) (*sidebar.CategoryLink, string) {
	if meta.Link != nil {
		switch sidebar.CategoryLinkType(meta.Link.Type) {
		case sidebar.CategoryLinkDoc:
			return &sidebar.CategoryLink{Type: sidebar.CategoryLinkDoc, ID: meta.Link.ID}, meta.Link.ID
		case sidebar.CategoryLinkGeneratedIndex:
			slug := meta.Link.Slug
			if slug == "" {
				slug = "/category/" + strcase.ToKebab(label)
			}
			return &sidebar.CategoryLink{
				Type:        sidebar.CategoryLinkGeneratedIndex,
				Slug:        slug,
				Title:       meta.Link.Title,
				Description: meta.Link.Description,
			}, ""
		}
	}

	for _, doc := range n.docs {
		if isCategoryIndex(b.parser, doc, cleanName) {
			return &sidebar.CategoryLink{Type: sidebar.CategoryLinkDoc, ID: doc.ID}, doc.ID
		}
	}
	return nil, ""
}

// isCategoryIndex reports whether doc follows the category index
// convention: named index, readme, or after its directory.
func isCategoryIndex(parser sidebar.NumberPrefixParser, doc sidebar.GeneratorDoc, dirName string) bool {
	name := strings.ToLower(StripNumberPrefix(parser, docFileName(doc)))
	return name == "index" || name == "readme" || name == strings.ToLower(dirName)
}

// docFrontMatter is the subset of front matter that affects doc items.
type docFrontMatter struct {
	SidebarLabel       string         `mapstructure:"sidebar_label"`
	SidebarClassName   string         `mapstructure:"sidebar_class_name"`
	SidebarCustomProps map[string]any `mapstructure:"sidebar_custom_props"`
}

func docItem(doc sidebar.GeneratorDoc) (*sidebar.DocItem, error) {
	var fm docFrontMatter
	if len(doc.FrontMatter) > 0 {
		if err := mapstructure.WeakDecode(doc.FrontMatter, &fm); err != nil {
			return nil, fmt.Errorf("doc %q: invalid sidebar front matter: %w", doc.ID, err)
		}
	}
	return &sidebar.DocItem{
		Presentation: sidebar.Presentation{
			ClassName:   fm.SidebarClassName,
			CustomProps: fm.SidebarCustomProps,
		},
		ID:    doc.ID,
		Label: fm.SidebarLabel,
	}, nil
}

// sortEntries orders entries by position; entries without a position come
// last. Ties keep file name order.
func sortEntries(entries []entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
	sort.SliceStable(entries, func(i, j int) bool {
		pi, pj := entries[i].position, entries[j].position
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return *pi < *pj
		}
	})
}

func sortedDocs(docs []sidebar.GeneratorDoc) []sidebar.GeneratorDoc {
	sorted := make([]sidebar.GeneratorDoc, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source < sorted[j].Source
	})
	return sorted
}

// docFileName is the doc's file name without directory and extension.
func docFileName(doc sidebar.GeneratorDoc) string {
	base := path.Base(doc.Source)
	return strings.TrimSuffix(base, path.Ext(base))
}

// cleanDirName maps "", ".", "./" and "/" to "." and removes surrounding
// slashes from everything else.
func cleanDirName(dir string) string {
	dir = strings.Trim(path.Clean("/"+strings.ReplaceAll(dir, "\\", "/")), "/")
	if dir == "" {
		return "."
	}
	return dir
}

// relativeDir returns docDir relative to dir, if docDir is dir or below it.
func relativeDir(dir, docDir string) (string, bool) {
	if dir == "." {
		if docDir == "." {
			return "", true
		}
		return docDir, true
	}
	if docDir == dir {
		return "", true
	}
	if strings.HasPrefix(docDir, dir+"/") {
		return strings.TrimPrefix(docDir, dir+"/"), true
	}
	return "", false
}

func joinDir(parent, name string) string {
	if parent == "." {
		return name
	}
	return parent + "/" + name
}
