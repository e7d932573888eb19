package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the marker file pyhatch writes into every generated
// project root.
const ManifestName = ".pyhatch.yml"

// Manifest records how a project was generated. It lets pyhatch (and the
// user) recognize a generated project later without re-deriving anything
// from the tree.
type Manifest struct {
	Project     string `yaml:"project"`
	Package     string `yaml:"package"`
	Author      string `yaml:"author"`
	Email       string `yaml:"email"`
	Description string `yaml:"description"`
	Features    struct {
		Tests bool `yaml:"tests"`
		Docs  bool `yaml:"docs"`
		Venv  bool `yaml:"venv"`
	} `yaml:"features"`
	GeneratedBy string `yaml:"generated_by"`
}

// NewManifest builds the manifest for a resolved spec.
func NewManifest(spec *Spec, version string) *Manifest {
	m := &Manifest{
		Project:     spec.Name,
		Package:     spec.PackageName,
		Author:      spec.Author,
		Email:       spec.Email,
		Description: spec.Description,
		GeneratedBy: "pyhatch " + version,
	}
	m.Features.Tests = spec.IncludeTests
	m.Features.Docs = spec.IncludeDocs
	m.Features.Venv = spec.IncludeVenv
	return m
}

// Marshal renders the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return data, nil
}

// ReadManifest loads the manifest from a project root. It returns an error
// when the file is missing or unparsable.
func ReadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}
	return &m, nil
}

// IsProject reports whether dir looks like a pyhatch-generated project
// (i.e. it carries a readable manifest).
func IsProject(dir string) bool {
	_, err := ReadManifest(dir)
	return err == nil
}
