package meta

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL       = "https://meta.quiltmc.org/v3"
	DefaultMojangBaseURL = "https://launchermeta.mojang.com"
)

// Client talks to the quilt-meta service. Every install performs fresh
// fetches; nothing is cached between calls and nothing is retried.
type Client struct {
	// BaseURL points at the quilt-meta v3 API.
	BaseURL string
	// MojangBaseURL points at the Mojang launcher metadata service, used to
	// locate vanilla server jars.
	MojangBaseURL string

	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:       DefaultBaseURL,
		MojangBaseURL: DefaultMojangBaseURL,
		http:          resty.New().SetHeader("User-Agent", "quiltgo"),
	}
}

// FetchGameVersions returns the game version catalog, newest first.
func (c *Client) FetchGameVersions(ctx context.Context) ([]MinecraftVersion, error) {
	var versions []MinecraftVersion
	resp, err := c.http.R().SetContext(ctx).SetResult(&versions).Get(c.BaseURL + "/versions/game")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game versions: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch game versions: %s", resp.Status())
	}
	return versions, nil
}

// FetchLoaderVersions returns the loader version catalog, newest first.
func (c *Client) FetchLoaderVersions(ctx context.Context) ([]LoaderVersion, error) {
	var versions []LoaderVersion
	resp, err := c.http.R().SetContext(ctx).SetResult(&versions).Get(c.BaseURL + "/versions/loader")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch loader versions: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch loader versions: %s", resp.Status())
	}
	return versions, nil
}

// FetchLaunchProfile returns the client launch descriptor for the version
// pair, with compatibility quirks already applied. The descriptor stays raw
// JSON so fields this installer does not know about survive untouched.
func (c *Client) FetchLaunchProfile(ctx context.Context, game MinecraftVersion, loader LoaderVersion) ([]byte, error) {
	return c.fetchProfile(ctx, game, loader, "profile")
}

// FetchServerProfile is FetchLaunchProfile for the server launch descriptor.
func (c *Client) FetchServerProfile(ctx context.Context, game MinecraftVersion, loader LoaderVersion) ([]byte, error) {
	return c.fetchProfile(ctx, game, loader, "server")
}

func (c *Client) fetchProfile(ctx context.Context, game MinecraftVersion, loader LoaderVersion, kind string) ([]byte, error) {
	url := fmt.Sprintf("%s/versions/loader/%s/%s/%s/json", c.BaseURL, game.Version, loader.Version, kind)
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s launch profile: %w", kind, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s launch profile for %s/%s: %s", kind, game, loader, resp.Status())
	}
	return PatchProfile(resp.Body(), loader)
}

// Download fetches a file into memory. Library jars are small enough that
// buffering them keeps the install-target surface simple.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to download %s: %s", url, resp.Status())
	}
	return resp.Body(), nil
}
