// Package project defines the resolved configuration for one generation
// run and the rules that produce it from raw CLI input.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pyhatch/pyhatch/internal/config"
)

// Spec is the fully resolved, immutable configuration for one generation
// run. It is constructed once by Resolve, read by the scaffolder, and
// discarded when the run completes.
type Spec struct {
	// Name is the literal project name as requested; it becomes the root
	// directory name.
	Name string

	// PackageName is Name sanitized into a Python package identifier:
	// lowercase, with every non-alphanumeric rune replaced by underscore.
	PackageName string

	Author      string
	Email       string
	Description string

	IncludeTests bool
	IncludeDocs  bool
	IncludeVenv  bool

	// TargetPath is BaseDir joined with Name; the root of the tree to
	// create.
	TargetPath string
}

// Options is the raw, CLI-shaped input to Resolve. Zero-value string
// fields mean "not provided" and receive defaults.
type Options struct {
	Name        string
	Author      string
	Email       string
	Description string

	NoTests bool
	NoDocs  bool
	NoVenv  bool

	// BaseDir is the directory the project is created under. Empty means
	// the current working directory.
	BaseDir string
}

// ValidationError reports malformed or missing required input. It is
// returned before any filesystem mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Resolve normalizes raw input into a Spec, applying defaults for omitted
// metadata. It performs no filesystem mutation; the only lookup is the
// working directory when Options.BaseDir is empty.
func Resolve(opts Options, defaults config.Defaults) (*Spec, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, &ValidationError{Field: "name", Reason: "must not contain path separators"}
	}
	if name == "." || name == ".." {
		return nil, &ValidationError{Field: "name", Reason: "must not be a relative path element"}
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		baseDir = cwd
	}

	spec := &Spec{
		Name:         name,
		PackageName:  PackageName(name),
		Author:       opts.Author,
		Email:        opts.Email,
		Description:  opts.Description,
		IncludeTests: !opts.NoTests,
		IncludeDocs:  !opts.NoDocs,
		IncludeVenv:  !opts.NoVenv,
		TargetPath:   filepath.Join(baseDir, name),
	}

	if spec.Author == "" {
		spec.Author = defaults.Author
	}
	if spec.Email == "" {
		spec.Email = defaults.Email
	}
	if spec.Description == "" {
		spec.Description = defaults.Description
	}

	return spec, nil
}

// PackageName sanitizes a project name into a Python package identifier.
// Every rune outside [a-zA-Z0-9] becomes an underscore, and the result is
// lowercased: "My Project!" → "my_project_".
func PackageName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
