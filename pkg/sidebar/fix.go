package sidebar

// FixItemInconsistencies corrects a single item. A non-collapsible category
// can't be collapsed.
func FixItemInconsistencies(item Item) Item {
	category, ok := item.(*CategoryItem)
	if !ok || category.Collapsible || !category.Collapsed {
		return item
	}
	fixed := *category
	fixed.Collapsed = false
	return &fixed
}

// FixSidebar applies FixItemInconsistencies at every depth of the sidebar.
func FixSidebar(items Sidebar) Sidebar {
	return TransformItems(items, FixItemInconsistencies)
}
