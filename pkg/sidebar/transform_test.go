package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformItems_ChildrenBeforeParent(t *testing.T) {
	input := []Item{
		&CategoryItem{
			Label: "outer",
			Items: []Item{
				&DocItem{ID: "a"},
				&CategoryItem{Label: "inner", Items: []Item{&DocItem{ID: "b"}}},
			},
		},
		&DocItem{ID: "c"},
	}

	var visited []string
	TransformItems(input, func(item Item) Item {
		switch v := item.(type) {
		case *DocItem:
			visited = append(visited, v.ID)
		case *CategoryItem:
			visited = append(visited, v.Label)
		}
		return item
	})

	assert.Equal(t, []string{"a", "b", "inner", "outer", "c"}, visited)
}

func TestTransformItems_RewritesAtEveryDepth(t *testing.T) {
	input := []Item{
		&CategoryItem{
			Label: "outer",
			Items: []Item{
				&CategoryItem{Label: "inner", Items: []Item{&DocItem{ID: "x"}}},
			},
		},
	}

	relabel := func(item Item) Item {
		if doc, ok := item.(*DocItem); ok {
			updated := *doc
			updated.Label = "Label " + doc.ID
			return &updated
		}
		return item
	}

	got := TransformItems(input, relabel)
	require.Len(t, got, 1)

	inner := got[0].(*CategoryItem).Items[0].(*CategoryItem)
	assert.Equal(t, "Label x", inner.Items[0].(*DocItem).Label)

	original := input[0].(*CategoryItem).Items[0].(*CategoryItem)
	assert.Empty(t, original.Items[0].(*DocItem).Label)
	assert.NotSame(t, input[0], got[0])
}

func TestContainsAutogenerated(t *testing.T) {
	assert.False(t, ContainsAutogenerated([]Item{&DocItem{ID: "a"}}))
	assert.True(t, ContainsAutogenerated([]Item{
		&CategoryItem{Label: "c", Items: []Item{&AutogeneratedItem{DirName: "."}}},
	}))
}

func TestCollectDocIDs(t *testing.T) {
	items := []Item{
		&DocItem{ID: "a"},
		&CategoryItem{Label: "c", Items: []Item{
			&RefItem{ID: "b"},
			&LinkItem{Label: "l", Href: "/x"},
		}},
		&DocItem{ID: "c"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, CollectDocIDs(items))
}
