// Package cli defines the command-line interface for the service.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikimentor/wiki-mentor/internal/config"
)

var envFile string

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:           "wiki-mentor",
	Short:         "Wikipedia Contribution Assistant API server",
	Long:          "wiki-mentor reviews article submissions against Wikipedia's core policies (NPOV, Verifiability, No Original Research) using the Gemini API and maps the feedback back onto the submitted text.",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("wiki-mentor v" + config.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "config", "", "env file to load (default: .env)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
