package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"limeal.fr/quiltgo/pkg/meta"
)

var (
	showSnapshots bool
	showBetas     bool
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List installable minecraft and loader versions",
	Long: `List installable minecraft and loader versions, newest first.

Snapshots and loader betas are hidden unless requested.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := meta.NewClient()

		games, err := client.FetchGameVersions(cmd.Context())
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}
		loaders, err := client.FetchLoaderVersions(cmd.Context())
		if err != nil {
			fmt.Println("❌ " + err.Error())
			return
		}

		fmt.Println("Minecraft versions:")
		for _, v := range games {
			if v.Stable || showSnapshots {
				fmt.Println("  - " + v.Version)
			}
		}
		fmt.Println("Loader versions:")
		for _, v := range loaders {
			if !v.IsBeta() || showBetas {
				fmt.Println("  - " + v.Version)
			}
		}
	},
}

func init() {
	versionsCmd.Flags().BoolVar(&showSnapshots, "snapshots", false, "Include minecraft snapshots")
	versionsCmd.Flags().BoolVar(&showBetas, "betas", false, "Include loader betas")
	rootCmd.AddCommand(versionsCmd)
}

// resolveVersions turns the --minecraft/--loader flag values into catalog
// entries: "stable", "snapshot"/"beta" or an exact version string.
func resolveVersions(ctx context.Context, client *meta.Client, mcFlag string, loaderFlag string) (meta.MinecraftVersion, meta.LoaderVersion, error) {
	games, err := client.FetchGameVersions(ctx)
	if err != nil {
		return meta.MinecraftVersion{}, meta.LoaderVersion{}, err
	}

	var game meta.MinecraftVersion
	switch mcFlag {
	case "", "stable":
		game, err = meta.LatestStable(games)
	case "snapshot":
		game, err = meta.LatestSnapshot(games)
	default:
		game, err = meta.FindGameVersion(games, mcFlag)
	}
	if err != nil {
		return meta.MinecraftVersion{}, meta.LoaderVersion{}, err
	}

	loaders, err := client.FetchLoaderVersions(ctx)
	if err != nil {
		return meta.MinecraftVersion{}, meta.LoaderVersion{}, err
	}

	var loader meta.LoaderVersion
	switch loaderFlag {
	case "", "stable":
		loader, err = meta.LatestLoader(loaders, false)
	case "beta":
		loader, err = meta.LatestLoader(loaders, true)
	default:
		loader, err = meta.FindLoaderVersion(loaders, loaderFlag)
	}
	if err != nil {
		return meta.MinecraftVersion{}, meta.LoaderVersion{}, err
	}

	return game, loader, nil
}
