package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/showcase/internal/version"
	"github.com/arthur-debert/showcase/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "showcase",
		Short: "Generate example-catalog manifests from a documentation corpus",
		Long: `showcase scans a documentation corpus for code examples and produces
the XML manifest files an IDE's example browser consumes: one catalog
entry per example with its attributes, search tags and the files to
open on launch.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)

	initTemplateFormatting()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for showcase`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showcase version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
