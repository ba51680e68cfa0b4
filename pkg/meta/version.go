package meta

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// MinecraftVersion is one entry of the game version catalog.
type MinecraftVersion struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

func (v MinecraftVersion) String() string {
	return v.Version
}

// LoaderVersion is one entry of the quilt-loader version catalog. Maven is
// the base URL of the repository the loader itself is served from.
type LoaderVersion struct {
	Separator string `json:"separator"`
	Build     uint   `json:"build"`
	Maven     string `json:"maven"`
	Version   string `json:"version"`
}

func (v LoaderVersion) String() string {
	return v.Version
}

// IsBeta reports whether the loader sits on the beta channel, meaning its
// semantic version carries a pre-release part.
func (v LoaderVersion) IsBeta() bool {
	return semver.Prerelease("v"+v.Version) != ""
}

// Compare orders two loader versions by semantic version.
func (v LoaderVersion) Compare(other LoaderVersion) int {
	return semver.Compare("v"+v.Version, "v"+other.Version)
}

// NotFoundError reports a version request no catalog entry satisfies.
type NotFoundError struct {
	Kind    string
	Version string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s version matching %q", e.Kind, e.Version)
}

// Both catalogs are served newest first, so "first match" below is also
// "latest match".

// LatestStable returns the newest stable game version.
func LatestStable(versions []MinecraftVersion) (MinecraftVersion, error) {
	for _, v := range versions {
		if v.Stable {
			return v, nil
		}
	}
	return MinecraftVersion{}, &NotFoundError{Kind: "stable minecraft", Version: "latest"}
}

// LatestSnapshot returns the newest snapshot game version.
func LatestSnapshot(versions []MinecraftVersion) (MinecraftVersion, error) {
	for _, v := range versions {
		if !v.Stable {
			return v, nil
		}
	}
	return MinecraftVersion{}, &NotFoundError{Kind: "snapshot minecraft", Version: "latest"}
}

// FindGameVersion returns the catalog entry matching id exactly.
func FindGameVersion(versions []MinecraftVersion, id string) (MinecraftVersion, error) {
	for _, v := range versions {
		if v.Version == id {
			return v, nil
		}
	}
	return MinecraftVersion{}, &NotFoundError{Kind: "minecraft", Version: id}
}

// LatestLoader returns the newest loader on the requested channel: releases
// by default, pre-release builds when betas is set.
func LatestLoader(versions []LoaderVersion, betas bool) (LoaderVersion, error) {
	for _, v := range versions {
		if v.IsBeta() == betas {
			return v, nil
		}
	}
	kind := "stable loader"
	if betas {
		kind = "beta loader"
	}
	return LoaderVersion{}, &NotFoundError{Kind: kind, Version: "latest"}
}

// FindLoaderVersion returns the catalog entry matching id exactly.
func FindLoaderVersion(versions []LoaderVersion, id string) (LoaderVersion, error) {
	for _, v := range versions {
		if v.Version == id {
			return v, nil
		}
	}
	return LoaderVersion{}, &NotFoundError{Kind: "loader", Version: id}
}
