package sidebarconfig

import (
	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/docnav/pkg/docs"
	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

// GeneratorOptions returns the sidebar options of the file. Both options
// default to true.
func (f *File) GeneratorOptions() sidebar.Options {
	opts := sidebar.Options{
		SidebarCollapsible: true,
		SidebarCollapsed:   true,
	}
	if f.Options == nil {
		return opts
	}
	if f.Options.SidebarCollapsible != nil {
		opts.SidebarCollapsible = *f.Options.SidebarCollapsible
	}
	if f.Options.SidebarCollapsed != nil {
		opts.SidebarCollapsed = *f.Options.SidebarCollapsed
	}
	return opts
}

// ContentVersion returns the version the file describes. Missing values
// default to version "current" in directory "docs".
func (f *File) ContentVersion() *docs.Version {
	v := &docs.Version{
		VersionName: "current",
		ContentPath: "docs",
	}
	if f.Version != nil {
		if f.Version.Name != "" {
			v.VersionName = f.Version.Name
		}
		if f.Version.ContentPath != "" {
			v.ContentPath = f.Version.ContentPath
		}
		v.Label = f.Version.Label
	}
	if v.Label == "" {
		v.Label = v.VersionName
	}
	return v
}

// UnprocessedSidebars converts the declared sidebars into unprocessed sidebar trees.
// The file is expected to have passed Validate.
func (f *File) UnprocessedSidebars() sidebar.Sidebars {
	opts := f.GeneratorOptions()
	out := make(sidebar.Sidebars, len(f.Sidebars))
	for _, s := range f.Sidebars {
		out[s.Name] = normalizeItems(s.Items, opts)
	}
	return out
}

func normalizeItems(items []ItemConfig, opts sidebar.Options) sidebar.Sidebar {
	out := make(sidebar.Sidebar, len(items))
	for i := range items {
		out[i] = normalizeItem(&items[i], opts)
	}
	return out
}

func normalizeItem(item *ItemConfig, opts sidebar.Options) sidebar.Item {
	presentation := sidebar.Presentation{
		ClassName:   item.ClassName,
		CustomProps: customProps(item.CustomProps),
	}

	switch sidebar.ItemType(item.Type) {
	case sidebar.ItemTypeRef:
		return &sidebar.RefItem{Presentation: presentation, ID: item.ID, Label: item.Label}
	case sidebar.ItemTypeLink:
		return &sidebar.LinkItem{
			Presentation: presentation,
			Label:        item.Label,
			Href:         item.Href,
			Description:  item.Description,
		}
	case sidebar.ItemTypeHTML:
		return &sidebar.HTMLItem{Presentation: presentation, Value: item.Value, DefaultStyle: item.DefaultStyle}
	case sidebar.ItemTypeAutogenerated:
		return &sidebar.AutogeneratedItem{Presentation: presentation, DirName: item.DirName}
	case sidebar.ItemTypeCategory:
		collapsible := opts.SidebarCollapsible
		if item.Collapsible != nil {
			collapsible = *item.Collapsible
		}
		collapsed := opts.SidebarCollapsed
		if item.Collapsed != nil {
			collapsed = *item.Collapsed
		}
		return &sidebar.CategoryItem{
			Presentation: presentation,
			Label:        item.Label,
			Items:        normalizeItems(item.Items, opts),
			Collapsible:  collapsible,
			Collapsed:    collapsed,
			Link:         normalizeLink(item.Link, item.Label),
			Description:  item.Description,
			Key:          item.Key,
		}
	default:
		return &sidebar.DocItem{Presentation: presentation, ID: item.ID, Label: item.Label}
	}
}

func normalizeLink(link *LinkConfig, label string) *sidebar.CategoryLink {
	if link == nil {
		return nil
	}
	out := &sidebar.CategoryLink{
		Type:        sidebar.CategoryLinkType(link.Type),
		ID:          link.ID,
		Slug:        link.Slug,
		Title:       link.Title,
		Description: link.Description,
	}
	if out.Type == sidebar.CategoryLinkGeneratedIndex && out.Slug == "" {
		out.Slug = "/category/" + strcase.ToKebab(label)
	}
	return out
}

func customProps(props map[string]string) map[string]any {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
