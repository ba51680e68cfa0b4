package installer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/buger/jsonparser"
)

// The launcher profile store is shared with the vanilla launcher and other
// tools. It is edited with targeted key writes instead of being decoded into
// a model, so every field this installer does not own survives untouched:
// other profiles, launcher settings, schema fields, all of it.

// addLauncherProfile inserts or replaces the entry at profiles.<name>. The
// same handle is read, truncated and rewritten, so there is no window where
// the store is absent from disk.
func addLauncherProfile(ctx context.Context, path string, name string, displayName string) error {
	file, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open launcher profile store: %w", err)
	}
	defer file.Close()

	store, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read launcher profile store: %w", err)
	}

	// Strict on the one thing we rely on; blind reconstruction of a broken
	// store would destroy sibling data.
	if _, kind, _, getErr := jsonparser.Get(store, "profiles"); getErr != nil || kind != jsonparser.Object {
		return fmt.Errorf("launcher profile store has no profiles object")
	}

	entry, err := buildProfileEntry(store, name, displayName)
	if err != nil {
		return err
	}

	merged, err := jsonparser.Set(store, entry, "profiles", name)
	if err != nil {
		return fmt.Errorf("failed to update profile entry: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, merged, "", "  "); err != nil {
		return fmt.Errorf("failed to format launcher profile store: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate launcher profile store: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind launcher profile store: %w", err)
	}
	if _, err := file.Write(pretty.Bytes()); err != nil {
		return fmt.Errorf("failed to write launcher profile store: %w", err)
	}
	return nil
}

// buildProfileEntry starts from the existing entry, if any, so fields owned
// by the launcher (javaArgs, gameDir, lastUsed, ...) survive a reinstall.
func buildProfileEntry(store []byte, name string, displayName string) ([]byte, error) {
	entry := []byte("{}")
	if existing, kind, _, err := jsonparser.Get(store, "profiles", name); err == nil && kind == jsonparser.Object {
		entry = existing
	}

	fields := [][2]string{
		{"name", displayName},
		{"type", "custom"},
		{"created", time.Now().Format(time.RFC3339)},
		{"lastVersionId", name},
		{"icon", profileIcon()},
	}
	for _, field := range fields {
		quoted, err := json.Marshal(field[1])
		if err != nil {
			return nil, fmt.Errorf("failed to encode profile field %s: %w", field[0], err)
		}
		entry, err = jsonparser.Set(entry, quoted, field[0])
		if err != nil {
			return nil, fmt.Errorf("failed to set profile field %s: %w", field[0], err)
		}
	}
	return entry, nil
}
