package sidebar

// TransformFunc rewrites a single item. Returning the same item means no
// change.
type TransformFunc func(Item) Item

// TransformItems applies fn to every item of the tree, depth-first. Children
// of a category are rewritten before fn sees the category itself.
//
// Items and categories that end up unchanged keep their identity, so a
// transform that rewrites nothing returns a tree made of the original
// pointers.
func TransformItems(items []Item, fn TransformFunc) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = transformItem(item, fn)
	}
	return out
}

func transformItem(item Item, fn TransformFunc) Item {
	category, ok := item.(*CategoryItem)
	if !ok {
		return fn(item)
	}

	children := TransformItems(category.Items, fn)
	if !sameItems(children, category.Items) {
		updated := *category
		updated.Items = children
		category = &updated
	}
	return fn(category)
}

func sameItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Walk calls fn for every item in the tree, parents before children.
func Walk(items []Item, fn func(Item)) {
	for _, item := range items {
		fn(item)
		if category, ok := item.(*CategoryItem); ok {
			Walk(category.Items, fn)
		}
	}
}

// ContainsAutogenerated reports whether any autogenerated item remains in
// the tree.
func ContainsAutogenerated(items []Item) bool {
	found := false
	Walk(items, func(item Item) {
		if item.Type() == ItemTypeAutogenerated {
			found = true
		}
	})
	return found
}

// CollectDocIDs returns the ids of all doc and ref items in tree order.
func CollectDocIDs(items []Item) []string {
	var ids []string
	Walk(items, func(item Item) {
		switch v := item.(type) {
		case *DocItem:
			ids = append(ids, v.ID)
		case *RefItem:
			ids = append(ids, v.ID)
		}
	})
	return ids
}
