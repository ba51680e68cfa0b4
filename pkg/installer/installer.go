package installer

import (
	"fmt"

	"github.com/charmbracelet/log"
	"limeal.fr/quiltgo/pkg/connectors"
	"limeal.fr/quiltgo/pkg/meta"
)

// ProgressFunc receives coarse progress while an install runs. Callers may
// ignore it entirely; the engine never depends on it being set.
type ProgressFunc func(section string, current int, total int, description string)

// Installer is the engine behind both install flavours. Every install is a
// fresh fetch-and-write cycle; the Installer itself holds no state between
// calls.
type Installer struct {
	Meta     *meta.Client
	Log      *log.Logger
	Progress ProgressFunc
}

func New(client *meta.Client) *Installer {
	return &Installer{
		Meta: client,
		Log:  log.Default(),
	}
}

// ProfileName derives the identifier used as version directory name, file
// stem and launcher profile key for a version pair. Reinstalling the same
// pair overwrites in place.
func ProfileName(loader meta.LoaderVersion, game meta.MinecraftVersion) string {
	return "quilt-loader-" + loader.Version + "-" + game.Version
}

// ClientInstallation registers a launchable profile inside an existing
// launcher directory.
type ClientInstallation struct {
	MinecraftVersion meta.MinecraftVersion
	LoaderVersion    meta.LoaderVersion
	InstallDir       string
	GenerateProfile  bool
}

// ServerInstallation assembles a self-contained, runnable server directory.
type ServerInstallation struct {
	MinecraftVersion meta.MinecraftVersion
	LoaderVersion    meta.LoaderVersion
	InstallDir       string
	// Target overrides where the assembled server is written. Leave nil to
	// write into InstallDir on the local filesystem.
	Target connectors.Connector
	// DownloadJar also fetches the vanilla server jar as server.jar.
	DownloadJar    bool
	GenerateScript bool
}

// InvalidTargetError reports a client install directory that is not a
// launcher installation.
type InvalidTargetError struct {
	Dir string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("%s is not a valid launcher directory (no launcher_profiles.json)", e.Dir)
}

func (i *Installer) logger() *log.Logger {
	if i.Log != nil {
		return i.Log
	}
	return log.Default()
}

func (i *Installer) report(section string, current int, total int, description string) {
	if i.Progress != nil {
		i.Progress(section, current, total, description)
	}
}
