package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerProfile(t *testing.T) {
	profile, err := ParseServerProfile([]byte(`{
		"launcherMainClass": "org.quiltmc.loader.impl.launch.server.QuiltServerLauncher",
		"libraries": [
			{"name": "org.quiltmc:quilt-loader:0.19.2", "url": "https://maven.quiltmc.org/repository/release/"}
		],
		"extra": {"ignored": true}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "org.quiltmc.loader.impl.launch.server.QuiltServerLauncher", profile.MainClass)
	require.Len(t, profile.Libraries, 1)
	assert.Equal(t, "org.quiltmc:quilt-loader:0.19.2", profile.Libraries[0].Name)
}

func TestParseServerProfileMissingFields(t *testing.T) {
	cases := []struct {
		raw   string
		field string
	}{
		{`{"libraries": []}`, "launcherMainClass"},
		{`{"launcherMainClass": "Main"}`, "libraries"},
		{`{"launcherMainClass": "Main", "libraries": [{"url": "https://repo/"}]}`, "libraries[0].name"},
		{`{"launcherMainClass": "Main", "libraries": [{"name": "a:b:1"}]}`, "libraries[0].url"},
	}
	for _, tc := range cases {
		_, err := ParseServerProfile([]byte(tc.raw))
		var malformed *MalformedProfileError
		require.ErrorAs(t, err, &malformed, tc.raw)
		assert.Equal(t, tc.field, malformed.Field)
	}
}

func TestParseServerProfileInvalidJSON(t *testing.T) {
	_, err := ParseServerProfile([]byte(`not json`))
	assert.Error(t, err)
}
