package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"limeal.fr/quiltgo/pkg/installer"
	"limeal.fr/quiltgo/pkg/meta"
	"limeal.fr/quiltgo/pkg/utils"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "quiltgo",
	Short: "quiltgo installs the quilt mod loader",
	Long: `quiltgo installs the quilt mod loader on top of an existing minecraft installation.
It can register a launchable profile inside the vanilla launcher, or assemble a
self-contained quilt server directory.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInstaller() *installer.Installer {
	inst := installer.New(meta.NewClient())
	if debug {
		inst.Log.SetLevel(log.DebugLevel)
	}
	inst.Progress = utils.PrintProgress
	return inst
}
