package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"limeal.fr/quiltgo/pkg/installer"
)

var (
	clientMinecraft string
	clientLoader    string
	clientNoProfile bool
)

var clientCmd = &cobra.Command{
	Use:   "client <install_dir>",
	Short: "Install the quilt loader into a vanilla launcher directory",
	Long: `Install the quilt loader into a vanilla launcher directory.

Arguments:
  <install_dir>    The launcher directory (usually .minecraft). It must already
                   contain launcher_profiles.json.

The client command registers a quilt-loader-<loader>-<minecraft> version and,
unless --no-profile is given, adds a matching entry to the launcher's profile
list. Reinstalling the same version pair overwrites the previous install.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inst := newInstaller()

		game, loader, err := resolveVersions(cmd.Context(), inst.Meta, clientMinecraft, clientLoader)
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		err = inst.InstallClient(cmd.Context(), installer.ClientInstallation{
			MinecraftVersion: game,
			LoaderVersion:    loader,
			InstallDir:       args[0],
			GenerateProfile:  !clientNoProfile,
		})
		fmt.Println()
		if err != nil {
			fmt.Println("❌ Installation failed: " + err.Error())
			return
		}
		fmt.Println("✅ Installed " + installer.ProfileName(loader, game))
	},
}

func init() {
	clientCmd.Flags().StringVar(&clientMinecraft, "minecraft", "stable", "Minecraft version, or \"stable\"/\"snapshot\"")
	clientCmd.Flags().StringVar(&clientLoader, "loader", "stable", "Loader version, or \"stable\"/\"beta\"")
	clientCmd.Flags().BoolVar(&clientNoProfile, "no-profile", false, "Skip the launcher profile entry")
	rootCmd.AddCommand(clientCmd)
}
