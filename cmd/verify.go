package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/probe"
	"nvim-bootstrap/internal/verify"
)

// verifyCmd re-probes every tool and prints the verification table without
// installing anything. The exit status reflects whether all required tools
// are present, so it works as a machine audit.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check which tools are present without installing anything",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		report := verify.Build(cat.Tools, probe.Command, nil)
		report.Print()
		if !report.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a tool catalog YAML file (default: built-in catalog)")
	rootCmd.AddCommand(verifyCmd)
}
