package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDefaults(t *testing.T) {
	d := BuiltinDefaults()
	assert.Equal(t, "Your Name", d.Author)
	assert.Equal(t, "your.email@example.com", d.Email)
	assert.Equal(t, "A Python project", d.Description)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("PYHATCH_CONFIG_DIR", t.TempDir())

	d, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BuiltinDefaults(), d)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "author: Ada Lovelace\nemail: ada@example.org\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyhatch.yml"), []byte(cfg), 0644))
	t.Setenv("PYHATCH_CONFIG_DIR", dir)

	d, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", d.Author)
	assert.Equal(t, "ada@example.org", d.Email)
	// Unset keys fall back to built-ins
	assert.Equal(t, DefaultDescription, d.Description)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyhatch.yml"), []byte("author: Ada Lovelace\n"), 0644))
	t.Setenv("PYHATCH_CONFIG_DIR", dir)
	t.Setenv("PYHATCH_AUTHOR", "Grace Hopper")

	d, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", d.Author)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyhatch.yml"), []byte("{unterminated"), 0644))
	t.Setenv("PYHATCH_CONFIG_DIR", dir)

	_, err := Load()
	require.Error(t, err)
}
