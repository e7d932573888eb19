package commands

import (
	"github.com/pyhatch/pyhatch"
	"github.com/pyhatch/pyhatch/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the pyhatch CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pyhatch",
		Short: "Generate standardized Python project layouts",
		Long: `pyhatch generates a complete, ready-to-work-on Python project from a name
and a few metadata options.

A generated project ships with:
• An importable package with a sanitized identifier
• pytest scaffolding, docs, and an optional virtual environment
• Packaging files (pyproject.toml, setup.cfg, setup.py) and a Makefile
• MIT license and a sensible .gitignore`,
		Version: pyhatch.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
