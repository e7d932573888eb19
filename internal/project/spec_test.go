package project

import (
	"path/filepath"
	"testing"

	"github.com/pyhatch/pyhatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	spec, err := Resolve(Options{Name: "demo", BaseDir: "/work"}, config.BuiltinDefaults())
	require.NoError(t, err)

	assert.Equal(t, "demo", spec.Name)
	assert.Equal(t, "demo", spec.PackageName)
	assert.Equal(t, "Your Name", spec.Author)
	assert.Equal(t, "your.email@example.com", spec.Email)
	assert.Equal(t, "A Python project", spec.Description)
	assert.True(t, spec.IncludeTests)
	assert.True(t, spec.IncludeDocs)
	assert.True(t, spec.IncludeVenv)
	assert.Equal(t, filepath.Join("/work", "demo"), spec.TargetPath)
}

func TestResolve_ExplicitMetadataWins(t *testing.T) {
	spec, err := Resolve(Options{
		Name:        "demo",
		Author:      "Grace Hopper",
		Email:       "grace@navy.mil",
		Description: "Compiler toys",
		BaseDir:     "/work",
	}, config.BuiltinDefaults())
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", spec.Author)
	assert.Equal(t, "grace@navy.mil", spec.Email)
	assert.Equal(t, "Compiler toys", spec.Description)
}

func TestResolve_FeatureFlagsInvert(t *testing.T) {
	spec, err := Resolve(Options{
		Name:    "demo",
		BaseDir: "/work",
		NoTests: true,
		NoDocs:  true,
		NoVenv:  true,
	}, config.BuiltinDefaults())
	require.NoError(t, err)

	assert.False(t, spec.IncludeTests)
	assert.False(t, spec.IncludeDocs)
	assert.False(t, spec.IncludeVenv)
}

func TestResolve_InvalidNames(t *testing.T) {
	tests := []struct {
		name    string
		rawName string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"forward slash", "foo/bar"},
		{"backslash", `foo\bar`},
		{"dot", "."},
		{"dot dot", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Options{Name: tt.rawName, BaseDir: "/work"}, config.BuiltinDefaults())
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "name", verr.Field)
		})
	}
}

func TestResolve_TrimsName(t *testing.T) {
	spec, err := Resolve(Options{Name: "  demo  ", BaseDir: "/work"}, config.BuiltinDefaults())
	require.NoError(t, err)
	assert.Equal(t, "demo", spec.Name)
}

func TestResolve_UsesWorkingDirectoryWhenBaseDirEmpty(t *testing.T) {
	spec, err := Resolve(Options{Name: "demo"}, config.BuiltinDefaults())
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(spec.TargetPath))
	assert.Equal(t, "demo", filepath.Base(spec.TargetPath))
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"demo", "demo"},
		{"Demo", "demo"},
		{"my-project", "my_project"},
		{"My Project!", "my_project_"},
		{"web2py", "web2py"},
		{"a.b.c", "a_b_c"},
		{"UPPER_CASE", "upper_case"},
		{"héllo", "h_llo"},
	}

	for _, tt := range tests {
		if got := PackageName(tt.in); got != tt.want {
			t.Errorf("PackageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Property from the contract: any name made of letters, digits, hyphens,
// and underscores resolves, and its package name is [a-z0-9_]+ only.
func TestPackageName_OnlyIdentifierRunes(t *testing.T) {
	names := []string{"demo", "My-App", "data_2", "A-B-C", "x9", "Mixed_Case-Name"}
	for _, name := range names {
		spec, err := Resolve(Options{Name: name, BaseDir: "/work"}, config.BuiltinDefaults())
		require.NoError(t, err, "name %q should resolve", name)
		for _, r := range spec.PackageName {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
			assert.True(t, ok, "package name %q contains invalid rune %q", spec.PackageName, r)
		}
	}
}
