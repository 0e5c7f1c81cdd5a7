package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nvim-bootstrap/internal/catalog"
	"nvim-bootstrap/internal/installer"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/platform"
	"nvim-bootstrap/internal/probe"
	"nvim-bootstrap/internal/verify"
)

// configPath optionally overrides the embedded tool catalog, via --config/-c.
var configPath string

// installCmd runs the full bootstrap: confirm, identify the platform, run the
// matching install strategy, verify, and print next steps. Declining the
// prompt exits 0; an unsupported platform, a failed required install, or a
// missing required tool after verification exits 1.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install all tools for the current platform",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		printPlan(cat)
		if !confirm("Proceed with installation? [y/N]: ") {
			logger.Warn("Installation cancelled.\n")
			return
		}

		plat := platform.Detect()
		strategy, err := installer.ForPlatform(plat)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}
		logger.Info("[INFO] Detected platform: %s. Installing with %s.\n", plat, strategy.Name())

		engine := installer.New(installer.ExecRunner{}, probe.Command)
		installed, err := engine.Run(strategy, cat.Tools)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		report := verify.Build(cat.Tools, probe.Command, installed)
		report.Print()

		if confirm("\nInstall the JetBrainsMono Nerd Font? [y/N]: ") {
			// A failed font install never fails the run.
			if err := installer.InstallFont(); err != nil {
				logger.Warn("[WARN] Font installation failed: %v\n", err)
			}
		}

		printNextSteps()
		if !report.OK() {
			os.Exit(1)
		}
	},
}

// printPlan lists the tools the bootstrap will ensure, so the operator knows
// what they are confirming.
func printPlan(cat *catalog.Catalog) {
	logger.Info("The following tools will be installed if missing:\n\n")
	logger.Info("  Required:\n")
	for _, t := range cat.Required() {
		logger.Info("    - %s\n", t.Name)
	}
	logger.Info("  Optional:\n")
	for _, t := range cat.Optional() {
		logger.Info("    - %s\n", t.Name)
	}
	logger.Info("\n")
}

// confirm prints the prompt and reads one line from stdin. Only "y"/"yes"
// (case-insensitive) is affirmative; anything else, including a read error,
// means no.
func confirm(prompt string) bool {
	logger.Warn("%s", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// printNextSteps tells the operator how to finish setting up the editor.
func printNextSteps() {
	logger.Info("\nNext steps:\n")
	logger.Info("  1. Clone the starter configuration:\n")
	logger.Info("       git clone https://github.com/LazyVim/starter ~/.config/nvim\n")
	logger.Info("  2. Start the editor (plugins install on first launch):\n")
	logger.Info("       nvim\n")
	logger.Info("  3. Check the install from inside the editor:\n")
	logger.Info("       :checkhealth\n")
}

func init() {
	installCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a tool catalog YAML file (default: built-in catalog)")
	rootCmd.AddCommand(installCmd)
}
