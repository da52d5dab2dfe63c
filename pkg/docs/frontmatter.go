package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds the front matter fields the loader understands. The
// complete front matter is kept on Doc.FrontMatter.
type FrontMatter struct {
	ID              string   `mapstructure:"id"`
	Title           string   `mapstructure:"title"`
	Description     string   `mapstructure:"description"`
	Slug            string   `mapstructure:"slug"`
	SidebarPosition *float64 `mapstructure:"sidebar_position"`
}

// ParseFrontMatter splits a markdown file into its YAML front matter and
// body.
//
// Format: ---\n<yaml>\n---\n<content>
//
// A file without an opening "---" has no front matter; the returned map is
// empty and the body is the whole file.
func ParseFrontMatter(data []byte) (map[string]any, string, error) {
	fm := make(map[string]any)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return fm, string(data), nil
	}

	var block strings.Builder
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}
	if !closed {
		return nil, "", fmt.Errorf("missing front matter closing '---'")
	}

	if err := yaml.Unmarshal([]byte(block.String()), &fm); err != nil {
		return nil, "", fmt.Errorf("invalid front matter: %w", err)
	}
	if fm == nil {
		fm = make(map[string]any)
	}

	var body strings.Builder
	for scanner.Scan() {
		body.WriteString(scanner.Text())
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}

	return fm, body.String(), nil
}

// DecodeFrontMatter maps the known fields of fm onto a FrontMatter.
// Scalars are converted where possible, so sidebar_position: "3" works.
func DecodeFrontMatter(fm map[string]any) (*FrontMatter, error) {
	var out FrontMatter
	if err := mapstructure.WeakDecode(fm, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// firstHeading returns the text of the first level-one markdown heading.
func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
