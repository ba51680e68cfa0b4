package installer

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"limeal.fr/quiltgo/pkg/maven"
)

func launchJarManifest(t *testing.T, jar []byte) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(jar), int64(len(jar)))
	require.NoError(t, err)
	require.Len(t, reader.File, 1, "launch jar must hold exactly one entry")
	require.Equal(t, "META-INF/MANIFEST.MF", reader.File[0].Name)

	file, err := reader.File[0].Open()
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	return string(content)
}

func testLibraries(t *testing.T, coordinates ...string) []maven.Artifact {
	t.Helper()
	libraries := make([]maven.Artifact, len(coordinates))
	for i, coordinate := range coordinates {
		artifact, err := maven.Resolve(coordinate, "https://repo/")
		require.NoError(t, err)
		libraries[i] = artifact
	}
	return libraries
}

func TestBuildLaunchJar(t *testing.T) {
	jar, err := buildLaunchJar("org.quiltmc.loader.impl.launch.server.QuiltServerLauncher",
		testLibraries(t, "org.quiltmc:quilt-loader:0.19.2", "org.ow2.asm:asm:9.6"))
	require.NoError(t, err)

	manifest := launchJarManifest(t, jar)
	assert.True(t, strings.HasSuffix(manifest, "\r\n"))

	unwrapped := strings.ReplaceAll(manifest, "\r\n ", "")
	assert.Contains(t, unwrapped, "Manifest-Version: 1.0\r\n")
	assert.Contains(t, unwrapped, "Main-Class: org.quiltmc.loader.impl.launch.server.QuiltServerLauncher\r\n")
	assert.Contains(t, unwrapped,
		"Class-Path: libraries/org/quiltmc/quilt-loader/0.19.2/quilt-loader-0.19.2.jar"+
			" libraries/org/ow2/asm/asm/9.6/asm-9.6.jar\r\n")
}

func TestManifestLineLength(t *testing.T) {
	coordinates := []string{
		"org.quiltmc:quilt-loader:0.19.2",
		"org.quiltmc.quilt-config.config-wrappers:nightconfig:1.1.0",
		"com.electronwill.night-config:toml:3.6.6",
		"org.ow2.asm:asm-analysis:9.6",
		"org.ow2.asm:asm-commons:9.6",
		"net.fabricmc:access-widener:2.1.0",
	}
	libraries := testLibraries(t, coordinates...)

	manifest := string(buildManifest("a.very.long.main.class.name.for.wrapping.QuiltServerLauncher",
		classPathEntries(libraries)))

	for _, line := range strings.Split(strings.TrimSuffix(manifest, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 72, "line %q", line)
	}

	// Stripping the inserted CRLF+space pairs reproduces the unwrapped text.
	unwrapped := strings.ReplaceAll(manifest, "\r\n ", "")
	expected := strings.Join(classPathEntries(libraries), " ")
	assert.Contains(t, unwrapped, "Class-Path: "+expected+"\r\n")
}
