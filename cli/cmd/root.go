package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "docwiki",
		Short:        "docwiki",
		SilenceUsage: true,
		Long:         `CLI tool for parsing and caching the wiki-style documentation comments embedded in a Go tree.`,
	}

	directory string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for Go packages")
	return rootCmd.Execute()
}
