package main

import (
	"os"

	"github.com/pyhatch/pyhatch/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.NewCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
