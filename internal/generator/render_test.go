package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	assert.NotNil(t, r)
	assert.NotNil(t, r.funcMap)
	assert.NotNil(t, r.cache)
	assert.Empty(t, r.cache)
}

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		wantErr     bool
		errContains string
	}{
		{
			name:        "simple template with no data",
			templateStr: "Hello World",
			data:        nil,
			expected:    "Hello World",
		},
		{
			name:        "template with struct data",
			templateStr: "Hello, {{ .Name }}!",
			data:        struct{ Name string }{Name: "Alice"},
			expected:    "Hello, Alice!",
		},
		{
			name:        "title helper",
			templateStr: "# {{ title .name }}",
			data:        map[string]any{"name": "my project"},
			expected:    "# My Project",
		},
		{
			name:        "lower helper",
			templateStr: "{{ lower .Name }}",
			data:        struct{ Name string }{Name: "DEMO"},
			expected:    "demo",
		},
		{
			name:        "quote helper",
			templateStr: "name={{ quote .Name }}",
			data:        struct{ Name string }{Name: "demo"},
			expected:    `name="demo"`,
		},
		{
			name:        "template with syntax error",
			templateStr: "{{ .Name }",
			data:        nil,
			wantErr:     true,
			errContains: "failed to parse template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderString(tt.name, tt.templateStr, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestRenderString_CachesParsedTemplates(t *testing.T) {
	r := NewRenderer()

	_, err := r.RenderString("cached", "x={{ .X }}", map[string]any{"X": 1})
	require.NoError(t, err)
	assert.Len(t, r.cache, 1)

	// Same name renders from cache with new data
	got, err := r.RenderString("cached", "ignored on cache hit", map[string]any{"X": 2})
	require.NoError(t, err)
	assert.Equal(t, "x=2", string(got))
	assert.Len(t, r.cache, 1)

	r.ClearCache()
	assert.Empty(t, r.cache)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"demo", "Demo"},
		{"my project", "My Project"},
		{"ALREADY UPPER", "Already Upper"},
		{"  padded   words ", "Padded Words"},
	}

	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"demo"`, Quote("demo"))
	assert.True(t, strings.HasPrefix(Quote(`with "quotes"`), `"`))
}
