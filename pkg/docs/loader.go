package docs

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
	"github.com/hashicorp-forge/docnav/pkg/sidebar/generator"
)

// Loader reads the docs of a content version from a filesystem.
type Loader struct {
	fs     afero.Fs
	logger hclog.Logger
	parser sidebar.NumberPrefixParser
}

// LoaderOption is a functional option for creating a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithNumberPrefixParser sets the parser used to clean file and directory
// names into ids and positions.
func WithNumberPrefixParser(parser sidebar.NumberPrefixParser) LoaderOption {
	return func(l *Loader) {
		l.parser = parser
	}
}

// NewLoader creates a loader over fs.
func NewLoader(fs afero.Fs, opts ...LoaderOption) *Loader {
	l := &Loader{fs: fs}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = hclog.NewNullLogger()
	}
	if l.parser == nil {
		l.parser = generator.DefaultNumberPrefixParser
	}
	return l
}

// Load returns the docs of version sorted by source path. Files and
// directories whose name starts with an underscore are partials and are
// skipped.
func (l *Loader) Load(ctx context.Context, version *Version) ([]*Doc, error) {
	if version == nil || version.ContentPath == "" {
		return nil, fmt.Errorf("content path is required")
	}

	root := version.ContentPath
	var docs []*Doc
	err := afero.Walk(l.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := info.Name()
		if info.IsDir() {
			if p != root && strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, "_") || !isDocFile(name) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		doc, err := l.loadDoc(root, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Source < docs[j].Source
	})

	l.logger.Debug("loaded docs",
		"version", version.VersionName,
		"content_path", root,
		"docs", len(docs),
	)
	return docs, nil
}

func (l *Loader) loadDoc(root, rel string) (*Doc, error) {
	source := path.Join(filepath.ToSlash(root), rel)
	data, err := afero.ReadFile(l.fs, filepath.FromSlash(source))
	if err != nil {
		return nil, err
	}

	raw, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, err
	}
	fm, err := DecodeFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}

	dir := path.Dir(rel)
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	cleanBase, prefix, hasPrefix := l.parser(base)

	id := fm.ID
	if id == "" {
		id = cleanBase
	}
	if dir != "." {
		id = l.cleanDir(dir) + "/" + id
	}

	position := fm.SidebarPosition
	if position == nil && hasPrefix {
		p := float64(prefix)
		position = &p
	}

	title := fm.Title
	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		title = cleanBase
	}

	slug := fm.Slug
	if slug == "" {
		slug = "/" + id
	}

	return &Doc{
		ID:              id,
		Title:           title,
		Description:     fm.Description,
		Slug:            slug,
		Source:          source,
		SourceDirName:   dir,
		SidebarPosition: position,
		FrontMatter:     raw,
	}, nil
}

// cleanDir strips number prefixes from every segment of dir.
func (l *Loader) cleanDir(dir string) string {
	segments := strings.Split(dir, "/")
	for i, s := range segments {
		segments[i] = generator.StripNumberPrefix(l.parser, s)
	}
	return strings.Join(segments, "/")
}

func isDocFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx":
		return true
	}
	return false
}
