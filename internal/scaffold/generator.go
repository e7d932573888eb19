// Package scaffold turns a resolved project spec into an on-disk Python
// project tree.
//
// Generation is strictly ordered: validate the target, create directories,
// write rendered files, then (optionally) create the virtual environment.
// Rendering is a pure function of the spec and the injected clock, so two
// runs with the same spec produce byte-identical files.
package scaffold

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pyhatch/pyhatch/internal/generator"
	"github.com/pyhatch/pyhatch/internal/project"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// File is one rendered output file, with Path relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// Result describes what a generation run produced.
type Result struct {
	Root     string   // absolute path of the project root
	Package  string   // sanitized package identifier
	Dirs     []string // created directories, relative to Root
	Files    []string // written files, relative to Root
	VenvPath string   // absolute venv path, empty when not created
}

// Options configures a Generator. Zero values get sensible defaults.
type Options struct {
	Clock   func() time.Time // license year source; defaults to time.Now
	Venv    VenvCreator      // defaults to PythonVenv with spinner
	Out     io.Writer        // operation log; defaults to os.Stdout
	Version string           // pyhatch version recorded in the manifest
	DryRun  bool             // print operations without touching disk
}

// Generator renders and writes project trees.
type Generator struct {
	renderer *generator.Renderer
	clock    func() time.Time
	venv     VenvCreator
	out      io.Writer
	version  string
	dryRun   bool
}

// New creates a project generator.
func New(opts Options) *Generator {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Venv == nil {
		opts.Venv = NewPythonVenv(true)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Generator{
		renderer: generator.NewRenderer(),
		clock:    opts.Clock,
		venv:     opts.Venv,
		out:      opts.Out,
		version:  opts.Version,
		dryRun:   opts.DryRun,
	}
}

// templateData is the rendering context shared by all templates.
type templateData struct {
	Name        string
	PackageName string
	Author      string
	Email       string
	Description string
	Year        int
}

// RenderAll produces every file of the project as a pure function of the
// spec. Nothing is written to disk. For a fixed clock the output is
// byte-identical across calls.
func (g *Generator) RenderAll(spec *project.Spec) ([]File, error) {
	data := templateData{
		Name:        spec.Name,
		PackageName: spec.PackageName,
		Author:      spec.Author,
		Email:       spec.Email,
		Description: spec.Description,
		Year:        g.clock().Year(),
	}

	type entry struct {
		path     string
		template string
		include  bool
	}
	entries := []entry{
		{filepath.Join(spec.PackageName, "__init__.py"), "init.py.tmpl", true},
		{filepath.Join("tests", "__init__.py"), "tests_init.py.tmpl", spec.IncludeTests},
		{filepath.Join("tests", "test_"+spec.PackageName+".py"), "test_package.py.tmpl", spec.IncludeTests},
		{filepath.Join("docs", "index.md"), "index.md.tmpl", spec.IncludeDocs},
		{".gitignore", "gitignore.tmpl", true},
		{"LICENSE", "license.tmpl", true},
		{"Makefile", "makefile.tmpl", true},
		{"README.md", "readme.md.tmpl", true},
		{"pyproject.toml", "pyproject.toml.tmpl", true},
		{"setup.cfg", "setup.cfg.tmpl", true},
		{"setup.py", "setup.py.tmpl", true},
	}

	var files []File
	for _, e := range entries {
		if !e.include {
			continue
		}
		content, err := g.renderer.RenderFS(templatesFS, "templates/"+e.template, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", e.path, err)
		}
		files = append(files, File{Path: e.path, Content: content})
	}

	// Generation manifest, so pyhatch can recognize its own projects
	manifest, err := project.NewManifest(spec, g.version).Marshal()
	if err != nil {
		return nil, err
	}
	files = append(files, File{Path: project.ManifestName, Content: manifest})

	return files, nil
}

// Generate creates the project tree for spec.
//
// The target must not exist; if it does, *DirectoryExistsError is returned
// and nothing is written. Later failures surface as *FilesystemError with
// the phase that failed; already-created entries are left in place (no
// rollback).
func (g *Generator) Generate(ctx context.Context, spec *project.Spec) (*Result, error) {
	if _, err := os.Stat(spec.TargetPath); err == nil {
		return nil, &DirectoryExistsError{Path: spec.TargetPath}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, &FilesystemError{Phase: PhaseValidatingTarget, Err: err}
	}

	dirs := []string{spec.PackageName}
	if spec.IncludeTests {
		dirs = append(dirs, "tests")
	}
	if spec.IncludeDocs {
		dirs = append(dirs, "docs")
	}

	dirOps := []generator.Operation{&generator.MkdirOp{Path: spec.TargetPath}}
	for _, d := range dirs {
		dirOps = append(dirOps, &generator.MkdirOp{Path: filepath.Join(spec.TargetPath, d)})
	}

	execOpts := generator.ExecuteOptions{DryRun: g.dryRun, Writer: g.out}

	if err := generator.Execute(ctx, dirOps, execOpts); err != nil {
		return nil, &FilesystemError{Phase: PhaseCreatingDirectories, Err: err}
	}

	files, err := g.RenderAll(spec)
	if err != nil {
		return nil, err
	}

	fileOps := make([]generator.Operation, 0, len(files))
	for _, f := range files {
		fileOps = append(fileOps, &generator.WriteFileOp{
			Path:    filepath.Join(spec.TargetPath, f.Path),
			Content: f.Content,
			Mode:    0644,
		})
	}

	if err := generator.Execute(ctx, fileOps, execOpts); err != nil {
		return nil, &FilesystemError{Phase: PhaseWritingFiles, Err: err}
	}

	result := &Result{
		Root:    spec.TargetPath,
		Package: spec.PackageName,
		Dirs:    dirs,
	}
	for _, f := range files {
		result.Files = append(result.Files, f.Path)
	}

	if spec.IncludeVenv {
		if g.dryRun {
			fmt.Fprintf(g.out, "✓ [DRY RUN] Create %s\n", filepath.Join(spec.TargetPath, VenvDirName))
		} else {
			venvPath, err := g.venv.Create(ctx, spec.TargetPath)
			if err != nil {
				return nil, &FilesystemError{Phase: PhaseCreatingVenv, Err: err}
			}
			result.VenvPath = venvPath
		}
	}

	return result, nil
}
