package sidebarconfig

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

var itemTypes = []any{
	string(sidebar.ItemTypeDoc),
	string(sidebar.ItemTypeRef),
	string(sidebar.ItemTypeLink),
	string(sidebar.ItemTypeHTML),
	string(sidebar.ItemTypeCategory),
	string(sidebar.ItemTypeAutogenerated),
}

var linkTypes = []any{
	string(sidebar.CategoryLinkDoc),
	string(sidebar.CategoryLinkGeneratedIndex),
}

// Validate checks every sidebar and item of the file. All problems are
// returned together; each is prefixed with its location, e.g.
// "sidebar.docs.items[1].items[0]".
func Validate(file *File) error {
	var result *multierror.Error

	seen := make(map[string]bool)
	for _, s := range file.Sidebars {
		if err := validation.Validate(s.Name, validation.Required); err != nil {
			result = multierror.Append(result, fmt.Errorf("sidebar name: %w", err))
		}
		if seen[s.Name] {
			result = multierror.Append(result, fmt.Errorf("sidebar.%s: duplicate sidebar name", s.Name))
		}
		seen[s.Name] = true

		for i := range s.Items {
			result = validateItem(result, fmt.Sprintf("sidebar.%s.items[%d]", s.Name, i), &s.Items[i])
		}
	}

	return result.ErrorOrNil()
}

func validateItem(result *multierror.Error, path string, item *ItemConfig) *multierror.Error {
	is := func(types ...sidebar.ItemType) bool {
		for _, t := range types {
			if item.Type == string(t) {
				return true
			}
		}
		return false
	}

	err := validation.ValidateStruct(item,
		validation.Field(&item.Type, validation.Required, validation.In(itemTypes...)),
		validation.Field(&item.ID,
			validation.When(is(sidebar.ItemTypeDoc, sidebar.ItemTypeRef), validation.Required)),
		validation.Field(&item.Label,
			validation.When(is(sidebar.ItemTypeLink, sidebar.ItemTypeCategory), validation.Required)),
		validation.Field(&item.Href,
			validation.When(is(sidebar.ItemTypeLink), validation.Required)),
		validation.Field(&item.Value,
			validation.When(is(sidebar.ItemTypeHTML), validation.Required)),
		validation.Field(&item.DirName,
			validation.When(is(sidebar.ItemTypeAutogenerated), validation.Required)),
		validation.Field(&item.Items,
			validation.When(!is(sidebar.ItemTypeCategory), validation.Empty)),
		validation.Field(&item.Link,
			validation.When(!is(sidebar.ItemTypeCategory), validation.Nil)),
	)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
	}

	if item.Link != nil {
		link := item.Link
		err := validation.ValidateStruct(link,
			validation.Field(&link.Type, validation.Required, validation.In(linkTypes...)),
			validation.Field(&link.ID,
				validation.When(link.Type == string(sidebar.CategoryLinkDoc), validation.Required)),
		)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s.link: %w", path, err))
		}
	}

	for i := range item.Items {
		result = validateItem(result, fmt.Sprintf("%s.items[%d]", path, i), &item.Items[i])
	}
	return result
}
