package generator

import (
	"context"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

func ptr[T any](v T) *T { return &v }

func testDoc(id, source, dir string) sidebar.GeneratorDoc {
	return sidebar.GeneratorDoc{ID: id, Source: source, SourceDirName: dir}
}

func testArgs(dirName string, docs ...sidebar.GeneratorDoc) sidebar.GeneratorArgs {
	return sidebar.GeneratorArgs{
		Item:               &sidebar.AutogeneratedItem{DirName: dirName},
		NumberPrefixParser: DefaultNumberPrefixParser,
		Docs:               docs,
		Version:            sidebar.GeneratorVersion{VersionName: "current", ContentPath: "docs"},
		Options:            sidebar.Options{SidebarCollapsible: true, SidebarCollapsed: true},
	}
}

func TestGenerate_FlatDirectory(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	second := testDoc("guides/b", "docs/guides/b.md", "guides")
	second.SidebarPosition = ptr(1.0)

	items, err := g.Generate(context.Background(), testArgs("guides",
		testDoc("guides/c", "docs/guides/c.md", "guides"),
		second,
		testDoc("guides/a", "docs/guides/a.md", "guides"),
		testDoc("other/x", "docs/other/x.md", "other"),
	))
	require.NoError(t, err)

	assert.Equal(t, []sidebar.Item{
		&sidebar.DocItem{ID: "guides/b"},
		&sidebar.DocItem{ID: "guides/a"},
		&sidebar.DocItem{ID: "guides/c"},
	}, items)
}

func TestGenerate_Subdirectories(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	items, err := g.Generate(context.Background(), testArgs(".",
		testDoc("intro", "docs/intro.md", "."),
		testDoc("api/overview", "docs/02-api/overview.md", "02-api"),
		testDoc("api/auth/tokens", "docs/02-api/auth/tokens.md", "02-api/auth"),
		testDoc("guides/a", "docs/01-guides/a.md", "01-guides"),
	))
	require.NoError(t, err)
	require.Len(t, items, 3)

	guides := items[0].(*sidebar.CategoryItem)
	assert.Equal(t, "guides", guides.Label)
	assert.True(t, guides.Collapsible)
	assert.True(t, guides.Collapsed)
	assert.Equal(t, []sidebar.Item{&sidebar.DocItem{ID: "guides/a"}}, guides.Items)

	api := items[1].(*sidebar.CategoryItem)
	assert.Equal(t, "api", api.Label)
	require.Len(t, api.Items, 2)
	// Neither has a position, so they follow name order.
	auth := api.Items[0].(*sidebar.CategoryItem)
	assert.Equal(t, "auth", auth.Label)
	assert.Equal(t, []sidebar.Item{&sidebar.DocItem{ID: "api/auth/tokens"}}, auth.Items)
	assert.Equal(t, &sidebar.DocItem{ID: "api/overview"}, api.Items[1])

	// Unprefixed entries without a position come last.
	assert.Equal(t, &sidebar.DocItem{ID: "intro"}, items[2])
}

func TestGenerate_CategoryIndexDoc(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	items, err := g.Generate(context.Background(), testArgs(".",
		testDoc("guides/index", "docs/guides/index.md", "guides"),
		testDoc("guides/a", "docs/guides/a.md", "guides"),
		testDoc("tutorial/tutorial", "docs/tutorial/tutorial.md", "tutorial"),
		testDoc("tutorial/step", "docs/tutorial/step.md", "tutorial"),
	))
	require.NoError(t, err)
	require.Len(t, items, 2)

	guides := items[0].(*sidebar.CategoryItem)
	assert.Equal(t, &sidebar.CategoryLink{Type: sidebar.CategoryLinkDoc, ID: "guides/index"}, guides.Link)
	assert.Equal(t, []sidebar.Item{&sidebar.DocItem{ID: "guides/a"}}, guides.Items)

	tutorial := items[1].(*sidebar.CategoryItem)
	assert.Equal(t, &sidebar.CategoryLink{Type: sidebar.CategoryLinkDoc, ID: "tutorial/tutorial"}, tutorial.Link)
	assert.Equal(t, []sidebar.Item{&sidebar.DocItem{ID: "tutorial/step"}}, tutorial.Items)
}

func TestGenerate_CategoryMetadata(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "docs/reference/_category_.yml", []byte(`
label: API Reference
position: 1
collapsible: false
collapsed: true
className: reference
customProps:
  badge: beta
link:
  type: generated-index
  title: Everything
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "docs/howto/_category_.json", []byte(`{
  "label": "How-to",
  "collapsed": false,
  "link": {"type": "doc", "id": "howto/start"}
}`), 0o644))

	g := New(WithFs(fs))
	items, err := g.Generate(context.Background(), testArgs(".",
		testDoc("howto/start", "docs/howto/start.md", "howto"),
		testDoc("howto/more", "docs/howto/more.md", "howto"),
		testDoc("reference/cli", "docs/reference/cli.md", "reference"),
	))
	require.NoError(t, err)
	require.Len(t, items, 2)

	reference := items[0].(*sidebar.CategoryItem)
	assert.Equal(t, &sidebar.CategoryItem{
		Presentation: sidebar.Presentation{
			ClassName:   "reference",
			CustomProps: map[string]any{"badge": "beta"},
		},
		Label:       "API Reference",
		Items:       []sidebar.Item{&sidebar.DocItem{ID: "reference/cli"}},
		Collapsible: false,
		Collapsed:   true,
		Link: &sidebar.CategoryLink{
			Type:  sidebar.CategoryLinkGeneratedIndex,
			Slug:  "/category/api-reference",
			Title: "Everything",
		},
	}, reference)

	howto := items[1].(*sidebar.CategoryItem)
	assert.Equal(t, "How-to", howto.Label)
	assert.True(t, howto.Collapsible)
	assert.False(t, howto.Collapsed)
	assert.Equal(t, &sidebar.CategoryLink{Type: sidebar.CategoryLinkDoc, ID: "howto/start"}, howto.Link)
	assert.Equal(t, []sidebar.Item{&sidebar.DocItem{ID: "howto/more"}}, howto.Items)
}

func TestGenerate_InvalidCategoryMetadata(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "docs/guides/_category_.yml", []byte("label: [unclosed"), 0o644))

	g := New(WithFs(fs))
	_, err := g.Generate(context.Background(), testArgs(".",
		testDoc("guides/a", "docs/guides/a.md", "guides"),
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs/guides/_category_.yml")
}

func TestGenerate_FrontMatterLabels(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	doc := testDoc("a", "docs/a.md", ".")
	doc.FrontMatter = map[string]any{
		"sidebar_label":        "Alpha",
		"sidebar_class_name":   "highlight",
		"sidebar_custom_props": map[string]any{"icon": "star"},
		"title":                "Ignored",
	}

	items, err := g.Generate(context.Background(), testArgs(".", doc))
	require.NoError(t, err)
	assert.Equal(t, []sidebar.Item{
		&sidebar.DocItem{
			Presentation: sidebar.Presentation{
				ClassName:   "highlight",
				CustomProps: map[string]any{"icon": "star"},
			},
			ID:    "a",
			Label: "Alpha",
		},
	}, items)
}

func TestGenerate_UsesOptions(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	args := testArgs(".", testDoc("guides/a", "docs/guides/a.md", "guides"))
	args.Options = sidebar.Options{SidebarCollapsible: false, SidebarCollapsed: false}

	items, err := g.Generate(context.Background(), args)
	require.NoError(t, err)
	require.Len(t, items, 1)

	category := items[0].(*sidebar.CategoryItem)
	assert.False(t, category.Collapsible)
	assert.False(t, category.Collapsed)
}

func TestGenerate_DisabledPrefixes(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	args := testArgs(".", testDoc("01-guides/a", "docs/01-guides/a.md", "01-guides"))
	args.NumberPrefixParser = DisabledNumberPrefixParser

	items, err := g.Generate(context.Background(), args)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "01-guides", items[0].(*sidebar.CategoryItem).Label)
}

func TestGenerate_NoDocs(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	_, err := g.Generate(context.Background(), testArgs("missing",
		testDoc("a", "docs/a.md", "."),
	))
	require.ErrorIs(t, err, ErrNoDocsFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestGenerate_CancelledContext(t *testing.T) {
	g := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, testArgs(".", testDoc("a", "docs/a.md", ".")))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCleanDirName(t *testing.T) {
	tests := map[string]string{
		"":         ".",
		".":        ".",
		"./":       ".",
		"/":        ".",
		"guides":   "guides",
		"guides/":  "guides",
		"./guides": "guides",
		"a//b/":    "a/b",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanDirName(in), "input %q", in)
	}
}

func TestGenerate_ConcurrentCallsShareArgs(t *testing.T) {
	g := New(WithFs(afero.NewMemMapFs()))

	b := testDoc("guides/b", "docs/guides/b.md", "guides")
	b.FrontMatter = map[string]any{"sidebar_label": "Bee"}
	docs := []sidebar.GeneratorDoc{
		testDoc("guides/c", "docs/guides/c.md", "guides"),
		b,
		testDoc("api/a", "docs/api/a.md", "api"),
	}
	snapshot := make([]sidebar.GeneratorDoc, len(docs))
	copy(snapshot, docs)

	var wg sync.WaitGroup
	results := make([][]sidebar.Item, 8)
	errs := make([]error, len(results))
	for i := range results {
		dir := "guides"
		if i%2 == 1 {
			dir = "api"
		}
		args := testArgs(dir, docs...)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = g.Generate(context.Background(), args)
		}()
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		if i%2 == 0 {
			assert.Equal(t, []sidebar.Item{
				&sidebar.DocItem{ID: "guides/b", Label: "Bee"},
				&sidebar.DocItem{ID: "guides/c"},
			}, results[i])
		} else {
			assert.Equal(t, []sidebar.Item{&sidebar.DocItem{ID: "api/a"}}, results[i])
		}
	}
	assert.Equal(t, snapshot, docs, "docs slice is left untouched")
	assert.Equal(t, map[string]any{"sidebar_label": "Bee"}, docs[1].FrontMatter)
}
