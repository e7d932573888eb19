package commands

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/pyhatch/pyhatch"
	"github.com/pyhatch/pyhatch/internal/config"
	"github.com/pyhatch/pyhatch/internal/input"
	"github.com/pyhatch/pyhatch/internal/output"
	"github.com/pyhatch/pyhatch/internal/project"
	"github.com/pyhatch/pyhatch/internal/scaffold"
	"github.com/spf13/cobra"
)

// NewCmd creates and returns the 'new' command for generating projects
func NewCmd() *cobra.Command {
	var author, email, description string
	var noTests, noDocs, noVenv bool
	var dryRun, interactive bool

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new Python project",
		Long: `Generates a standardized Python project:
• Package directory with a sanitized identifier
• tests/ with a pytest smoke test (skip with --no-tests)
• docs/ with a starter index (skip with --no-docs)
• Virtual environment via the host Python (skip with --no-venv)
• README, LICENSE, Makefile, .gitignore, and packaging files

The target directory must not already exist; pyhatch never merges into an
existing tree.

Examples:
  pyhatch new demo
  pyhatch new demo -a "Grace Hopper" -e grace@navy.mil -d "Compiler toys"
  pyhatch new demo --no-venv --dry-run`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]

			defaults, err := config.Load()
			if err != nil {
				output.Error(fmt.Sprintf("Failed to load defaults: %v", err))
				os.Exit(1)
			}

			var prompter *input.Reader
			if interactive {
				prompter = input.New(nil, nil)
				if author == "" {
					author = prompter.Prompt("Author", defaults.Author)
				}
				if email == "" {
					email = prompter.Prompt("Email", defaults.Email)
				}
				if description == "" {
					description = prompter.Prompt("Description", defaults.Description)
				}
			}

			spec, err := project.Resolve(project.Options{
				Name:        name,
				Author:      author,
				Email:       email,
				Description: description,
				NoTests:     noTests,
				NoDocs:      noDocs,
				NoVenv:      noVenv,
			}, defaults)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if cwd, err := os.Getwd(); err == nil && project.IsProject(cwd) {
				if prompter != nil {
					if !prompter.Confirm("Current directory is already a pyhatch project. Create a nested project?", false) {
						output.Info("Aborted")
						return
					}
				} else {
					output.Verbose("Current directory is itself a pyhatch project; nesting projects is unusual")
				}
			}

			output.Verbose(fmt.Sprintf("Creating project %s (package %s) at %s", spec.Name, spec.PackageName, spec.TargetPath))

			gen := scaffold.New(scaffold.Options{
				Version: pyhatch.Version,
				DryRun:  dryRun,
			})

			result, err := gen.Generate(cmd.Context(), spec)
			if err != nil {
				var exists *scaffold.DirectoryExistsError
				if errors.As(err, &exists) {
					output.Error(fmt.Sprintf("Directory %s already exists", exists.Path))
				} else {
					output.Error(err.Error())
				}
				os.Exit(1)
			}

			if dryRun {
				output.Info("Dry run complete; nothing was written")
				return
			}

			printSummary(spec, result)
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Author name for project metadata")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Author email for project metadata")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description of the project")
	cmd.Flags().BoolVar(&noTests, "no-tests", false, "Skip creating the tests directory")
	cmd.Flags().BoolVar(&noDocs, "no-docs", false, "Skip creating the docs directory")
	cmd.Flags().BoolVar(&noVenv, "no-venv", false, "Skip creating a virtual environment")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print planned operations without writing anything")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for metadata not given as flags")

	return cmd
}

// printSummary reports what was created and how to get started.
func printSummary(spec *project.Spec, result *scaffold.Result) {
	output.Success(fmt.Sprintf("Created project: %s", spec.Name))
	output.Info("Next steps:")
	output.Step(fmt.Sprintf("cd %s", spec.Name))
	if result.VenvPath != "" {
		if runtime.GOOS == "windows" {
			output.Step(`.\venv\Scripts\activate`)
		} else {
			output.Step("source venv/bin/activate")
		}
	}
	output.Step("pip install -e .")
	if spec.IncludeTests {
		output.Step("make test")
	}
}
