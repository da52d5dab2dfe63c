package sidebar

import (
	"encoding/json"
	"fmt"
)

// Items are encoded as JSON objects carrying a "type" discriminator, the
// same shape the site theme consumes.

func (d *DocItem) MarshalJSON() ([]byte, error) {
	type alias DocItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{ItemTypeDoc, (*alias)(d)})
}

func (r *RefItem) MarshalJSON() ([]byte, error) {
	type alias RefItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{ItemTypeRef, (*alias)(r)})
}

func (l *LinkItem) MarshalJSON() ([]byte, error) {
	type alias LinkItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{ItemTypeLink, (*alias)(l)})
}

func (h *HTMLItem) MarshalJSON() ([]byte, error) {
	type alias HTMLItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{ItemTypeHTML, (*alias)(h)})
}

func (c *CategoryItem) MarshalJSON() ([]byte, error) {
	type alias CategoryItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{ItemTypeCategory, (*alias)(c)})
}

func (a *AutogeneratedItem) MarshalJSON() ([]byte, error) {
	type alias AutogeneratedItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		*alias
	}{ItemTypeAutogenerated, (*alias)(a)})
}

// UnmarshalJSON decodes a category and its nested items.
func (c *CategoryItem) UnmarshalJSON(data []byte) error {
	type alias CategoryItem
	aux := struct {
		*alias
		Items json.RawMessage `json:"items"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	items, err := UnmarshalItems(aux.Items)
	if err != nil {
		return fmt.Errorf("category %q: %w", c.Label, err)
	}
	c.Items = items
	return nil
}

// UnmarshalJSON decodes a sidebar from a JSON array of typed items.
func (s *Sidebar) UnmarshalJSON(data []byte) error {
	items, err := UnmarshalItems(data)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// UnmarshalItems decodes a JSON array of typed items. A null or empty
// input yields a nil slice.
func UnmarshalItems(data []byte) ([]Item, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(raws))
	for i, raw := range raws {
		item, err := unmarshalItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func unmarshalItem(raw json.RawMessage) (Item, error) {
	var head struct {
		Type ItemType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	var item Item
	switch head.Type {
	case ItemTypeDoc:
		item = &DocItem{}
	case ItemTypeRef:
		item = &RefItem{}
	case ItemTypeLink:
		item = &LinkItem{}
	case ItemTypeHTML:
		item = &HTMLItem{}
	case ItemTypeCategory:
		item = &CategoryItem{}
	case ItemTypeAutogenerated:
		item = &AutogeneratedItem{}
	default:
		return nil, fmt.Errorf("unknown sidebar item type %q", head.Type)
	}

	if err := json.Unmarshal(raw, item); err != nil {
		return nil, fmt.Errorf("decoding %s item: %w", head.Type, err)
	}
	return item, nil
}
