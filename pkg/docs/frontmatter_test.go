package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFM   map[string]any
		wantBody string
		wantErr  bool
	}{
		{
			name:     "with front matter",
			input:    "---\ntitle: Hello\nsidebar_position: 3\n---\n# Body\n",
			wantFM:   map[string]any{"title": "Hello", "sidebar_position": 3},
			wantBody: "# Body\n",
		},
		{
			name:     "without front matter",
			input:    "# Just a body\n",
			wantFM:   map[string]any{},
			wantBody: "# Just a body\n",
		},
		{
			name:     "empty front matter",
			input:    "---\n---\ntext\n",
			wantFM:   map[string]any{},
			wantBody: "text\n",
		},
		{
			name:    "unclosed",
			input:   "---\ntitle: Hello\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			input:   "---\ntitle: [\n---\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := ParseFrontMatter([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFM, fm)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestDecodeFrontMatter(t *testing.T) {
	fm, err := DecodeFrontMatter(map[string]any{
		"id":               "custom",
		"title":            "Title",
		"sidebar_position": "2.5",
		"unknown":          true,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", fm.ID)
	assert.Equal(t, "Title", fm.Title)
	require.NotNil(t, fm.SidebarPosition)
	assert.Equal(t, 2.5, *fm.SidebarPosition)
}
