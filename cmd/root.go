package cmd

import (
	"github.com/spf13/cobra"

	"nvim-bootstrap/internal/logger"
)

// debug indicates whether debug logging is enabled, toggled via --debug.
var debug bool

// rootCmd is the base command for the nvim-bootstrap CLI.
var rootCmd = &cobra.Command{
	Use:   "nvim-bootstrap",
	Short: "Install the external tools the Neovim distribution depends on",

	// Initialize the logger before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers flags and subcommands and runs the CLI. It is the entry
// point invoked from main.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	_ = rootCmd.Execute()
}
