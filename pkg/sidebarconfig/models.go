package sidebarconfig

// File is the content of a sidebars configuration file.
//
// Example (HCL):
//
//	options {
//	  sidebar_collapsible = true
//	  sidebar_collapsed   = false
//	}
//
//	version {
//	  name         = "current"
//	  content_path = "docs"
//	}
//
//	sidebar "docs" {
//	  item "doc" {
//	    id = "intro"
//	  }
//	  item "category" {
//	    label = "Guides"
//	    item "autogenerated" {
//	      dir_name = "guides"
//	    }
//	  }
//	}
type File struct {
	Options  *OptionsConfig  `hcl:"options,block"`
	Version  *VersionConfig  `hcl:"version,block"`
	Sidebars []SidebarConfig `hcl:"sidebar,block"`
}

// OptionsConfig holds the sidebar defaults. Unset values default to true.
type OptionsConfig struct {
	SidebarCollapsible *bool `hcl:"sidebar_collapsible,optional" mapstructure:"sidebar_collapsible"`
	SidebarCollapsed   *bool `hcl:"sidebar_collapsed,optional" mapstructure:"sidebar_collapsed"`
}

// VersionConfig describes the content version the sidebars belong to.
type VersionConfig struct {
	Name        string `hcl:"name,optional" mapstructure:"name"`
	Label       string `hcl:"label,optional" mapstructure:"label"`
	ContentPath string `hcl:"content_path,optional" mapstructure:"content_path"`
}

// SidebarConfig is a single named sidebar.
type SidebarConfig struct {
	Name  string       `hcl:"name,label"`
	Items []ItemConfig `hcl:"item,block"`
}

// ItemConfig is a declared sidebar item. Which fields apply depends on
// Type; Validate reports fields missing for the item's type.
type ItemConfig struct {
	Type string `hcl:"type,label" mapstructure:"type" json:"type"`

	// doc, ref
	ID string `hcl:"id,optional" mapstructure:"id" json:"id"`

	// doc, ref, link, category
	Label string `hcl:"label,optional" mapstructure:"label" json:"label"`

	// link
	Href        string `hcl:"href,optional" mapstructure:"href" json:"href"`
	Description string `hcl:"description,optional" mapstructure:"description" json:"description"`

	// html
	Value        string `hcl:"value,optional" mapstructure:"value" json:"value"`
	DefaultStyle bool   `hcl:"default_style,optional" mapstructure:"default_style" json:"default_style"`

	// autogenerated
	DirName string `hcl:"dir_name,optional" mapstructure:"dir_name" json:"dir_name"`

	// category
	Collapsible *bool        `hcl:"collapsible,optional" mapstructure:"collapsible" json:"collapsible"`
	Collapsed   *bool        `hcl:"collapsed,optional" mapstructure:"collapsed" json:"collapsed"`
	Key         string       `hcl:"key,optional" mapstructure:"key" json:"key"`
	Link        *LinkConfig  `hcl:"link,block" mapstructure:"link" json:"link"`
	Items       []ItemConfig `hcl:"item,block" mapstructure:"items" json:"items"`

	ClassName   string            `hcl:"class_name,optional" mapstructure:"class_name" json:"class_name"`
	CustomProps map[string]string `hcl:"custom_props,optional" mapstructure:"custom_props" json:"custom_props"`
}

// LinkConfig is the link of a category.
type LinkConfig struct {
	Type        string `hcl:"type,label" mapstructure:"type" json:"type"`
	ID          string `hcl:"id,optional" mapstructure:"id" json:"id"`
	Slug        string `hcl:"slug,optional" mapstructure:"slug" json:"slug"`
	Title       string `hcl:"title,optional" mapstructure:"title" json:"title"`
	Description string `hcl:"description,optional" mapstructure:"description" json:"description"`
}
