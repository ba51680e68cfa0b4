package installer

import (
	"context"
	"fmt"
	"path"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"limeal.fr/quiltgo/pkg/connectors"
	"limeal.fr/quiltgo/pkg/maven"
	"limeal.fr/quiltgo/pkg/meta"
	"limeal.fr/quiltgo/pkg/utils"
)

// InstallServer assembles a runnable quilt server: the full library tree,
// the launch jar whose manifest class-path ties it together, and optionally
// the vanilla server jar and start scripts.
//
// The descriptor is validated before anything is written, so a malformed
// descriptor never leaves a half-assembled directory behind. A failed
// library download aborts the whole install; libraries already on disk stay
// there and a re-run overwrites them.
func (i *Installer) InstallServer(ctx context.Context, args ServerInstallation) error {
	logger := i.logger().With("minecraft", args.MinecraftVersion.Version, "loader", args.LoaderVersion.Version)
	logger.Debug("installing server", "dir", args.InstallDir)

	target := args.Target
	if target == nil {
		target = connectors.NewFileConnector(args.InstallDir)
	}
	if !target.IsConnected() {
		if err := target.Connect(); err != nil {
			return fmt.Errorf("failed to connect to install target: %w", err)
		}
		defer target.Close()
	}

	raw, err := i.Meta.FetchServerProfile(ctx, args.MinecraftVersion, args.LoaderVersion)
	if err != nil {
		return err
	}
	profile, err := meta.ParseServerProfile(raw)
	if err != nil {
		return err
	}

	libraries := make([]maven.Artifact, 0, len(profile.Libraries))
	for _, library := range profile.Libraries {
		artifact, err := maven.Resolve(library.Name, library.URL)
		if err != nil {
			return fmt.Errorf("library %s: %w", library.Name, err)
		}
		libraries = append(libraries, artifact)
	}

	if err := i.downloadLibraries(ctx, target, libraries); err != nil {
		return err
	}

	jar, err := buildLaunchJar(profile.MainClass, libraries)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := target.SendFileFromBytes(LaunchJarName, jar); err != nil {
		return fmt.Errorf("failed to write %s: %w", LaunchJarName, err)
	}

	if args.DownloadJar {
		if err := i.downloadServerJar(ctx, target, args.MinecraftVersion); err != nil {
			return err
		}
	}

	if args.GenerateScript {
		if err := writeLaunchScripts(ctx, target); err != nil {
			return err
		}
	}

	logger.Info("server installed", "libraries", len(libraries))
	return nil
}

// downloadLibraries fans out one download per library and fails the whole
// install on the first error. Each library owns a distinct destination path,
// so the workers share nothing but the counter.
func (i *Installer) downloadLibraries(ctx context.Context, target connectors.Connector, libraries []maven.Artifact) error {
	group, ctx := errgroup.WithContext(ctx)
	total := len(libraries)
	var done atomic.Int64

	for _, library := range libraries {
		library := library
		group.Go(func() error {
			data, err := i.Meta.Download(ctx, library.URL)
			if err != nil {
				return err
			}
			if err := target.SendFileFromBytes(path.Join("libraries", library.Path), data); err != nil {
				return fmt.Errorf("failed to store %s: %w", library.Path, err)
			}
			i.report("Downloading libraries", int(done.Add(1)), total, path.Base(library.Path))
			return nil
		})
	}
	return group.Wait()
}

// downloadServerJar fetches the vanilla server jar beside the launch jar,
// verifying Mojang's published checksum.
func (i *Installer) downloadServerJar(ctx context.Context, target connectors.Connector, game meta.MinecraftVersion) error {
	jar, err := i.Meta.ResolveServerJar(ctx, game)
	if err != nil {
		return err
	}

	i.report("Downloading server", 1, 1, "server.jar")
	data, err := i.Meta.Download(ctx, jar.URL)
	if err != nil {
		return err
	}
	if jar.SHA1 != "" && utils.BytesSHA1(data) != jar.SHA1 {
		return fmt.Errorf("server jar checksum mismatch for %s", game)
	}

	if err := target.SendFileFromBytes("server.jar", data); err != nil {
		return fmt.Errorf("failed to write server.jar: %w", err)
	}
	return nil
}
