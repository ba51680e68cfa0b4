package meta

import (
	"context"
	"fmt"
)

// ServerJar locates the vanilla server jar published for a game version.
type ServerJar struct {
	URL  string
	SHA1 string
}

// ResolveServerJar walks Mojang's launcher metadata to find the vanilla
// server jar for a game version: the global manifest maps the version id to a
// per-version document, which carries the download URL and checksum.
func (c *Client) ResolveServerJar(ctx context.Context, game MinecraftVersion) (ServerJar, error) {
	var manifest struct {
		Versions []struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"versions"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&manifest).Get(c.MojangBaseURL + "/mc/game/version_manifest_v2.json")
	if err != nil {
		return ServerJar{}, fmt.Errorf("failed to fetch version manifest: %w", err)
	}
	if resp.IsError() {
		return ServerJar{}, fmt.Errorf("failed to fetch version manifest: %s", resp.Status())
	}

	detailsURL := ""
	for _, v := range manifest.Versions {
		if v.ID == game.Version {
			detailsURL = v.URL
			break
		}
	}
	if detailsURL == "" {
		return ServerJar{}, &NotFoundError{Kind: "minecraft", Version: game.Version}
	}

	var details struct {
		Downloads struct {
			Server struct {
				URL  string `json:"url"`
				SHA1 string `json:"sha1"`
			} `json:"server"`
		} `json:"downloads"`
	}
	resp, err = c.http.R().SetContext(ctx).SetResult(&details).Get(detailsURL)
	if err != nil {
		return ServerJar{}, fmt.Errorf("failed to fetch version details for %s: %w", game, err)
	}
	if resp.IsError() {
		return ServerJar{}, fmt.Errorf("failed to fetch version details for %s: %s", game, resp.Status())
	}

	if details.Downloads.Server.URL == "" {
		return ServerJar{}, fmt.Errorf("no server jar published for %s", game)
	}
	return ServerJar{URL: details.Downloads.Server.URL, SHA1: details.Downloads.Server.SHA1}, nil
}
