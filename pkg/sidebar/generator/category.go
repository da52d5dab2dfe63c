package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// categoryMetadataFiles are looked up in this order in every generated
// category directory. JSON is read with the YAML decoder.
var categoryMetadataFiles = []string{
	"_category_.json",
	"_category_.yml",
	"_category_.yaml",
}

// CategoryMetadata overrides the defaults of a generated category.
type CategoryMetadata struct {
	Label       string                `yaml:"label"`
	Position    *float64              `yaml:"position"`
	Collapsible *bool                 `yaml:"collapsible"`
	Collapsed   *bool                 `yaml:"collapsed"`
	ClassName   string                `yaml:"className"`
	CustomProps map[string]any        `yaml:"customProps"`
	Description string                `yaml:"description"`
	Link        *CategoryLinkMetadata `yaml:"link"`
}

// CategoryLinkMetadata is the link section of a category metadata file.
type CategoryLinkMetadata struct {
	Type        string `yaml:"type"`
	ID          string `yaml:"id"`
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// readCategoryMetadata returns the metadata of the category directory dir,
// relative to contentPath, or nil if the directory has none.
func readCategoryMetadata(fsys afero.Fs, contentPath, dir string) (*CategoryMetadata, error) {
	for _, name := range categoryMetadataFiles {
		filename := path.Join(contentPath, dir, name)
		data, err := afero.ReadFile(fsys, filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}

		var meta CategoryMetadata
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		return &meta, nil
	}
	return nil, nil
}
