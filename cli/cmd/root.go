package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "yescode",
		Short:        "yescode",
		SilenceUsage: true,
		Long:         `CLI tool for checking, inspecting and reformatting YES documents. See README.md.`,
	}

	directory string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for *.yes-files")
	return rootCmd.Execute()
}

func init() {
}
