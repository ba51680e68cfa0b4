package meta

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
	"golang.org/x/mod/semver"
)

// A quirk is a version-gated fixup applied to a fetched launch profile before
// it is used. Quirks edit the raw document in place, so everything they do
// not touch round-trips byte for byte. New quirks are appended to the table;
// callers never change.
type quirk struct {
	name    string
	applies func(loader LoaderVersion) bool
	apply   func(raw []byte) ([]byte, error)
}

var quirks = []quirk{
	// quilt-meta declares both hashed and intermediary mappings, and loaders
	// before 0.17.7 silently fail remapping when handed both.
	{
		name:    "drop-hashed-mappings",
		applies: func(l LoaderVersion) bool { return semver.Compare("v"+l.Version, "v0.17.7") < 0 },
		apply:   dropHashedLibraries,
	},
}

// PatchProfile runs every applicable quirk against a raw launch profile.
// Applying it twice yields the same document.
func PatchProfile(raw []byte, loader LoaderVersion) ([]byte, error) {
	patched := raw
	for _, q := range quirks {
		if !q.applies(loader) {
			continue
		}
		var err error
		patched, err = q.apply(patched)
		if err != nil {
			return nil, fmt.Errorf("quirk %s: %w", q.name, err)
		}
	}
	return patched, nil
}

func dropHashedLibraries(raw []byte) ([]byte, error) {
	kept := make([][]byte, 0)
	_, err := jsonparser.ArrayEach(raw, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		name, nameErr := jsonparser.GetString(value, "name")
		if nameErr == nil && strings.HasPrefix(name, "org.quiltmc:hashed") {
			return
		}
		kept = append(kept, value)
	}, "libraries")
	if err != nil {
		return nil, fmt.Errorf("failed to read libraries: %w", err)
	}

	rebuilt := []byte("[")
	for i, library := range kept {
		if i > 0 {
			rebuilt = append(rebuilt, ',')
		}
		rebuilt = append(rebuilt, library...)
	}
	rebuilt = append(rebuilt, ']')

	return jsonparser.Set(raw, rebuilt, "libraries")
}
