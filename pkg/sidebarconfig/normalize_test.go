package sidebarconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/docnav/pkg/docs"
	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

func TestGeneratorOptions(t *testing.T) {
	assert.Equal(t,
		sidebar.Options{SidebarCollapsible: true, SidebarCollapsed: true},
		(&File{}).GeneratorOptions())

	file := &File{Options: &OptionsConfig{SidebarCollapsed: boolPtr(false)}}
	assert.Equal(t,
		sidebar.Options{SidebarCollapsible: true, SidebarCollapsed: false},
		file.GeneratorOptions())
}

func TestContentVersion(t *testing.T) {
	assert.Equal(t,
		&docs.Version{VersionName: "current", Label: "current", ContentPath: "docs"},
		(&File{}).ContentVersion())

	file := &File{Version: &VersionConfig{Name: "2.0", Label: "v2", ContentPath: "versioned_docs/version-2.0"}}
	assert.Equal(t,
		&docs.Version{VersionName: "2.0", Label: "v2", ContentPath: "versioned_docs/version-2.0"},
		file.ContentVersion())
}

func TestUnprocessedSidebars(t *testing.T) {
	file := &File{
		Options: &OptionsConfig{SidebarCollapsed: boolPtr(false)},
		Sidebars: []SidebarConfig{
			{
				Name: "docs",
				Items: []ItemConfig{
					{Type: "doc", ID: "intro", Label: "Intro", ClassName: "first"},
					{
						Type:        "category",
						Label:       "Getting Started",
						Collapsible: boolPtr(false),
						CustomProps: map[string]string{"icon": "rocket"},
						Link:        &LinkConfig{Type: "generated-index"},
						Items: []ItemConfig{
							{Type: "autogenerated", DirName: "start"},
							{Type: "category", Label: "Nested", Collapsed: boolPtr(true)},
						},
					},
					{Type: "link", Label: "Home", Href: "/", Description: "Landing page"},
					{Type: "html", Value: "<hr/>", DefaultStyle: true},
					{Type: "ref", ID: "other"},
				},
			},
			{Name: "empty"},
		},
	}

	got := file.UnprocessedSidebars()
	require.Len(t, got, 2)
	assert.Empty(t, got["empty"])

	assert.Equal(t, sidebar.Sidebar{
		&sidebar.DocItem{Presentation: sidebar.Presentation{ClassName: "first"}, ID: "intro", Label: "Intro"},
		&sidebar.CategoryItem{
			Presentation: sidebar.Presentation{CustomProps: map[string]any{"icon": "rocket"}},
			Label:        "Getting Started",
			Collapsible:  false,
			Collapsed:    false,
			Link:         &sidebar.CategoryLink{Type: sidebar.CategoryLinkGeneratedIndex, Slug: "/category/getting-started"},
			Items: []sidebar.Item{
				&sidebar.AutogeneratedItem{DirName: "start"},
				&sidebar.CategoryItem{
					Label:       "Nested",
					Collapsible: true,
					Collapsed:   true,
					Items:       []sidebar.Item{},
				},
			},
		},
		&sidebar.LinkItem{Label: "Home", Href: "/", Description: "Landing page"},
		&sidebar.HTMLItem{Value: "<hr/>", DefaultStyle: true},
		&sidebar.RefItem{ID: "other"},
	}, got["docs"])
}
