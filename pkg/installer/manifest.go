package installer

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"limeal.fr/quiltgo/pkg/maven"
)

const LaunchJarName = "quilt-server-launch.jar"

// buildLaunchJar produces the jar the server is started from. It holds a
// single manifest entry; the actual code lives in the libraries the manifest
// Class-Path points at, relative to the jar's own directory.
func buildLaunchJar(mainClass string, libraries []maven.Artifact) ([]byte, error) {
	classPath := classPathEntries(libraries)

	var buf bytes.Buffer
	jar := zip.NewWriter(&buf)
	manifest, err := jar.Create("META-INF/MANIFEST.MF")
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest entry: %w", err)
	}
	if _, err := manifest.Write(buildManifest(mainClass, classPath)); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := jar.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize launch jar: %w", err)
	}
	return buf.Bytes(), nil
}

// classPathEntries maps each library onto its path relative to the launch
// jar's directory.
func classPathEntries(libraries []maven.Artifact) []string {
	entries := make([]string, len(libraries))
	for i, library := range libraries {
		entries[i] = "libraries/" + library.Path
	}
	return entries
}

func buildManifest(mainClass string, classPath []string) []byte {
	var manifest bytes.Buffer
	writeManifestAttribute(&manifest, "Manifest-Version", "1.0")
	writeManifestAttribute(&manifest, "Main-Class", mainClass)
	writeManifestAttribute(&manifest, "Class-Path", strings.Join(classPath, " "))
	return manifest.Bytes()
}

// writeManifestAttribute renders one attribute with CRLF endings, wrapped at
// 72 bytes per line; continuation lines start with a single space, per the
// jar manifest format.
func writeManifestAttribute(buf *bytes.Buffer, key string, value string) {
	line := key + ": " + value
	for len(line) > 72 {
		buf.WriteString(line[:72])
		buf.WriteString("\r\n")
		line = " " + line[72:]
	}
	buf.WriteString(line)
	buf.WriteString("\r\n")
}
