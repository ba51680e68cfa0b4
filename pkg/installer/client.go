package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// InstallClient installs the loader as a launchable profile inside an
// existing launcher directory. The directory must already contain
// launcher_profiles.json; this engine never creates a launcher installation
// on the caller's behalf.
//
// Two installers racing on the same launcher directory are not guarded
// against; single-instance use is assumed.
func (i *Installer) InstallClient(ctx context.Context, args ClientInstallation) error {
	logger := i.logger().With("minecraft", args.MinecraftVersion.Version, "loader", args.LoaderVersion.Version)
	logger.Debug("installing client", "dir", args.InstallDir)

	profilesPath := filepath.Join(args.InstallDir, "launcher_profiles.json")
	if _, err := os.Stat(profilesPath); err != nil {
		return &InvalidTargetError{Dir: args.InstallDir}
	}

	name := ProfileName(args.LoaderVersion, args.MinecraftVersion)
	profileDir := filepath.Join(args.InstallDir, "versions", name)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Reinstalling the same pair starts from a clean directory.
	if err := os.RemoveAll(profileDir); err != nil {
		return fmt.Errorf("failed to remove existing profile %s: %w", name, err)
	}
	if err := os.MkdirAll(profileDir, 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	i.report("Installing client", 1, 3, "fetching launch profile")
	profile, err := i.Meta.FetchLaunchProfile(ctx, args.MinecraftVersion, args.LoaderVersion)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// An empty jar beside the json keeps the vanilla launcher happy.
	i.report("Installing client", 2, 3, "writing launch profile")
	if err := os.WriteFile(filepath.Join(profileDir, name+".jar"), nil, 0644); err != nil {
		return fmt.Errorf("failed to create placeholder jar: %w", err)
	}
	if err := os.WriteFile(filepath.Join(profileDir, name+".json"), profile, 0644); err != nil {
		return fmt.Errorf("failed to write launch profile: %w", err)
	}

	if args.GenerateProfile {
		i.report("Installing client", 3, 3, "updating launcher profiles")
		displayName := "quilt-loader-" + args.MinecraftVersion.Version
		if err := addLauncherProfile(ctx, profilesPath, name, displayName); err != nil {
			return err
		}
	}

	logger.Info("client installed", "profile", name)
	return nil
}
