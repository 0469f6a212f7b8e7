// Package cli implements the command-line interface for docsift.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/core/ports/driving"
	"github.com/docsift/docsift-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// qaService is the QA service used by the ask and tui commands.
// It is injected by main before Execute runs.
var qaService driving.QAService

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Ask questions about a PDF document",
	Long: `docsift decomposes a PDF into text, tables and images, indexes the
content in memory and answers natural-language questions about it
with page citations.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose pipeline logging")
}

// SetQAService injects the QA service used by the ask and tui commands.
func SetQAService(svc driving.QAService) {
	qaService = svc
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
