package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient()
	client.BaseURL = server.URL
	client.MojangBaseURL = server.URL
	return client
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestFetchGameVersions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/versions/game", serveJSON(`[
		{"version": "1.20.2-rc1", "stable": false},
		{"version": "1.20.1", "stable": true}
	]`))

	versions, err := newTestClient(t, mux).FetchGameVersions(context.Background())
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, MinecraftVersion{Version: "1.20.2-rc1", Stable: false}, versions[0])
	assert.Equal(t, MinecraftVersion{Version: "1.20.1", Stable: true}, versions[1])
}

func TestFetchLoaderVersions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/versions/loader", serveJSON(`[
		{"separator": ".", "build": 2, "maven": "https://maven.quiltmc.org/repository/release/", "version": "0.19.2"}
	]`))

	versions, err := newTestClient(t, mux).FetchLoaderVersions(context.Background())
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "0.19.2", versions[0].Version)
	assert.Equal(t, uint(2), versions[0].Build)
	assert.Equal(t, "https://maven.quiltmc.org/repository/release/", versions[0].Maven)
}

func TestFetchGameVersionsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/versions/game", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "meta is down", http.StatusInternalServerError)
	})

	_, err := newTestClient(t, mux).FetchGameVersions(context.Background())
	assert.Error(t, err)
}

func TestFetchLaunchProfileAppliesPatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/versions/loader/1.19.2/0.16.0/profile/json", serveJSON(patchFixture))
	client := newTestClient(t, mux)

	profile, err := client.FetchLaunchProfile(context.Background(),
		MinecraftVersion{Version: "1.19.2"}, LoaderVersion{Version: "0.16.0"})
	require.NoError(t, err)

	names := libraryNames(t, profile)
	assert.NotContains(t, names, "org.quiltmc:hashed:1.19.2")
	assert.Contains(t, names, "org.quiltmc:quilt-loader:0.16.0")
}

func TestFetchServerProfileNotFound(t *testing.T) {
	mux := http.NewServeMux()

	_, err := newTestClient(t, mux).FetchServerProfile(context.Background(),
		MinecraftVersion{Version: "1.19.2"}, LoaderVersion{Version: "0.19.2"})
	assert.Error(t, err)
}

func TestResolveServerJar(t *testing.T) {
	mux := http.NewServeMux()
	var detailsURL string
	mux.HandleFunc("/mc/game/version_manifest_v2.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"versions": [{"id": "1.20.1", "url": %q}]}`, detailsURL)
	})
	mux.HandleFunc("/v1/packages/1.20.1.json", serveJSON(`{
		"downloads": {"server": {"url": "https://example.invalid/server.jar", "sha1": "da39a3ee"}}
	}`))

	client := newTestClient(t, mux)
	detailsURL = client.MojangBaseURL + "/v1/packages/1.20.1.json"

	jar, err := client.ResolveServerJar(context.Background(), MinecraftVersion{Version: "1.20.1"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.invalid/server.jar", jar.URL)
	assert.Equal(t, "da39a3ee", jar.SHA1)
}

func TestResolveServerJarUnknownVersion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mc/game/version_manifest_v2.json", serveJSON(`{"versions": []}`))

	_, err := newTestClient(t, mux).ResolveServerJar(context.Background(), MinecraftVersion{Version: "1.20.1"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
