package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/platform"
)

// platformCmd prints the detected platform. Exits 1 when the platform is
// unrecognized, matching what install would do.
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected platform and install strategy family",
	Run: func(cmd *cobra.Command, args []string) {
		p := platform.Detect()
		if p.Family == platform.FamilyUnknown {
			logger.Error("[ERROR] Unsupported platform. Supported families: macOS, Debian, Fedora, Arch.\n")
			os.Exit(1)
		}
		logger.Info("[INFO] Detected platform: %s\n", p)
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
