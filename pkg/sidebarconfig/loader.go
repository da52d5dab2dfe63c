package sidebarconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither HCL, YAML nor
// JSON.
var ErrUnsupportedFormat = errors.New("unsupported sidebars file format")

// Load reads and decodes a sidebars file. The format is chosen by
// extension: .hcl, .yaml, .yml or .json.
func Load(fs afero.Fs, filename string) (*File, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		return decodeHCL(filename, src)
	case ".yaml", ".yml", ".json":
		return decodeYAML(src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func decodeHCL(filename string, src []byte) (*File, error) {
	var file File
	if err := hclsimple.Decode(filename, src, nil, &file); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	return &file, nil
}

// yamlFile is the YAML/JSON layout. Sidebars are keyed by name and items
// may be bare strings, short for doc items.
type yamlFile struct {
	Options  map[string]any   `yaml:"options"`
	Version  map[string]any   `yaml:"version"`
	Sidebars map[string][]any `yaml:"sidebars"`
}

func decodeYAML(src []byte) (*File, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	file := &File{}
	if raw.Options != nil {
		file.Options = &OptionsConfig{}
		if err := decodeMap(raw.Options, file.Options); err != nil {
			return nil, fmt.Errorf("options: %w", err)
		}
	}
	if raw.Version != nil {
		file.Version = &VersionConfig{}
		if err := decodeMap(raw.Version, file.Version); err != nil {
			return nil, fmt.Errorf("version: %w", err)
		}
	}

	names := make([]string, 0, len(raw.Sidebars))
	for name := range raw.Sidebars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var items []ItemConfig
		if err := decodeMap(expandShorthands(raw.Sidebars[name]), &items); err != nil {
			return nil, fmt.Errorf("sidebar %q: %w", name, err)
		}
		file.Sidebars = append(file.Sidebars, SidebarConfig{Name: name, Items: items})
	}

	return file, nil
}

// expandShorthands turns bare string items into doc items, at every depth.
func expandShorthands(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			out[i] = map[string]any{"type": "doc", "id": v}
		case map[string]any:
			if children, ok := v["items"].([]any); ok {
				expanded := make(map[string]any, len(v))
				for k, val := range v {
					expanded[k] = val
				}
				expanded["items"] = expandShorthands(children)
				out[i] = expanded
			} else {
				out[i] = v
			}
		default:
			out[i] = item
		}
	}
	return out
}

func decodeMap(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
