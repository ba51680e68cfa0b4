package meta

import (
	"encoding/json"
	"fmt"
)

// Library is one entry of a launch profile's library list: a maven coordinate
// plus the repository it is served from.
type Library struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ServerProfile is the typed view of a server launch descriptor, limited to
// the fields the server assembler acts on. The raw descriptor stays the
// source of truth for everything else.
type ServerProfile struct {
	MainClass string
	Libraries []Library
}

// MalformedProfileError reports a launch descriptor missing a field the
// installer cannot proceed without.
type MalformedProfileError struct {
	Field string
}

func (e *MalformedProfileError) Error() string {
	return fmt.Sprintf("launch profile is missing %q", e.Field)
}

// ParseServerProfile decodes and validates a raw server launch descriptor.
func ParseServerProfile(raw []byte) (ServerProfile, error) {
	var decoded struct {
		MainClass *string `json:"launcherMainClass"`
		Libraries []struct {
			Name *string `json:"name"`
			URL  *string `json:"url"`
		} `json:"libraries"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ServerProfile{}, fmt.Errorf("failed to decode launch profile: %w", err)
	}

	if decoded.MainClass == nil || *decoded.MainClass == "" {
		return ServerProfile{}, &MalformedProfileError{Field: "launcherMainClass"}
	}
	if decoded.Libraries == nil {
		return ServerProfile{}, &MalformedProfileError{Field: "libraries"}
	}

	profile := ServerProfile{MainClass: *decoded.MainClass}
	for i, library := range decoded.Libraries {
		if library.Name == nil || *library.Name == "" {
			return ServerProfile{}, &MalformedProfileError{Field: fmt.Sprintf("libraries[%d].name", i)}
		}
		if library.URL == nil || *library.URL == "" {
			return ServerProfile{}, &MalformedProfileError{Field: fmt.Sprintf("libraries[%d].url", i)}
		}
		profile.Libraries = append(profile.Libraries, Library{Name: *library.Name, URL: *library.URL})
	}
	return profile, nil
}
