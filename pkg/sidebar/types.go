package sidebar

// ItemType identifies the kind of a sidebar item.
type ItemType string

const (
	ItemTypeDoc           ItemType = "doc"
	ItemTypeRef           ItemType = "ref"
	ItemTypeLink          ItemType = "link"
	ItemTypeHTML          ItemType = "html"
	ItemTypeCategory      ItemType = "category"
	ItemTypeAutogenerated ItemType = "autogenerated"
)

// Item is a single node of a sidebar tree.
//
// A processed sidebar only contains leaf items (doc, ref, link, html) and
// categories. Autogenerated items are placeholders that only exist before
// processing.
type Item interface {
	Type() ItemType
}

// Presentation holds the pass-through fields shared by every item. They are
// never interpreted by processing, only carried to the rendered output.
type Presentation struct {
	ClassName   string         `json:"className,omitempty"`
	CustomProps map[string]any `json:"customProps,omitempty"`
}

// DocItem references a single document by id.
type DocItem struct {
	Presentation
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// RefItem references a document without marking it as part of the sidebar.
type RefItem struct {
	Presentation
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// LinkItem is an arbitrary link.
type LinkItem struct {
	Presentation
	Label       string `json:"label"`
	Href        string `json:"href"`
	Description string `json:"description,omitempty"`
}

// HTMLItem renders raw markup.
type HTMLItem struct {
	Presentation
	Value        string `json:"value"`
	DefaultStyle bool   `json:"defaultStyle,omitempty"`
}

// CategoryLinkType is the kind of page a category label links to.
type CategoryLinkType string

const (
	CategoryLinkDoc            CategoryLinkType = "doc"
	CategoryLinkGeneratedIndex CategoryLinkType = "generated-index"
)

// CategoryLink is the optional target of a category label.
type CategoryLink struct {
	Type        CategoryLinkType `json:"type"`
	ID          string           `json:"id,omitempty"`
	Slug        string           `json:"slug,omitempty"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
}

// CategoryItem groups an ordered list of child items.
//
// A category that is not collapsible can never be collapsed; processing
// forces Collapsed to false when Collapsible is false.
type CategoryItem struct {
	Presentation
	Label       string        `json:"label"`
	Items       []Item        `json:"items"`
	Collapsible bool          `json:"collapsible"`
	Collapsed   bool          `json:"collapsed"`
	Link        *CategoryLink `json:"link,omitempty"`
	Description string        `json:"description,omitempty"`
	Key         string        `json:"key,omitempty"`
}

// AutogeneratedItem asks for the docs under DirName to be expanded into
// concrete sibling items at its position.
type AutogeneratedItem struct {
	Presentation
	DirName string `json:"dirName"`
}

func (*DocItem) Type() ItemType           { return ItemTypeDoc }
func (*RefItem) Type() ItemType           { return ItemTypeRef }
func (*LinkItem) Type() ItemType          { return ItemTypeLink }
func (*HTMLItem) Type() ItemType          { return ItemTypeHTML }
func (*CategoryItem) Type() ItemType      { return ItemTypeCategory }
func (*AutogeneratedItem) Type() ItemType { return ItemTypeAutogenerated }

// Sidebar is an ordered list of top-level items.
type Sidebar []Item

// Sidebars maps sidebar names to their trees. Names are opaque.
type Sidebars map[string]Sidebar
