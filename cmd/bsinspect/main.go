// Command bsinspect parses, builds, and sizes fixed binary formats
// described as construct descriptors, picked by name from a small
// built-in registry of worked examples.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "bsinspect",
		Short: "Parse, build, and size binary formats described as construct descriptors",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace parse/build/sizeof steps")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newSizeofCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
