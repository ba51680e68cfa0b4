package maven

import (
	"fmt"
	"strings"
)

// Artifact is the resolved location of a maven coordinate: where to download
// it from and where it sits relative to a repository root. Path always uses
// forward slashes, on every platform.
type Artifact struct {
	URL  string
	Path string
}

// Resolve maps a "group:artifact:version" coordinate onto a repository base
// URL. The coordinate is split on the first two colons only; anything after a
// third colon is treated as a classifier and folded into the file name
// (artifact-version-classifier.jar).
func Resolve(coordinate string, repository string) (Artifact, error) {
	parts := strings.SplitN(coordinate, ":", 3)
	if len(parts) < 3 {
		return Artifact{}, fmt.Errorf("invalid maven coordinate %q (expected group:artifact:version)", coordinate)
	}

	group, artifact, version := parts[0], parts[1], parts[2]
	classifier := ""
	if i := strings.IndexByte(version, ':'); i >= 0 {
		version, classifier = version[:i], version[i+1:]
	}
	if group == "" || artifact == "" || version == "" {
		return Artifact{}, fmt.Errorf("invalid maven coordinate %q (expected group:artifact:version)", coordinate)
	}

	file := artifact + "-" + version
	if classifier != "" {
		file += "-" + classifier
	}
	file += ".jar"

	path := strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/" + version + "/" + file
	if !strings.HasSuffix(repository, "/") {
		repository += "/"
	}

	return Artifact{URL: repository + path, Path: path}, nil
}
