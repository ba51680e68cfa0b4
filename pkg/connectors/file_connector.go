package connectors

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const FILE_SCHEME = "file"

type FileConnector struct {
	Path string
}

// NewFileConnector targets a plain local directory.
func NewFileConnector(path string) *FileConnector {
	return &FileConnector{Path: path}
}

func (c *FileConnector) NewFromURI(uri string) Connector {
	// Example: file:///path/to/dir
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil
	}

	finalPath := parsed.Host + parsed.Path
	if strings.HasPrefix(finalPath, "./") {
		pwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		finalPath = filepath.Join(pwd, strings.TrimPrefix(finalPath, "./"))
	}

	return &FileConnector{
		Path: finalPath,
	}
}

func (c *FileConnector) GetURI() string {
	return FILE_SCHEME + "://" + c.Path
}

func (c *FileConnector) Connect() error {
	return nil
}

func (c *FileConnector) IsConnected() bool {
	return true
}

func (c *FileConnector) Close() error {
	return nil
}

func (c *FileConnector) HasFile(remotePath string) bool {
	_, err := os.Stat(filepath.Join(c.Path, remotePath))
	return err == nil
}

func (c *FileConnector) SendFileFromBytes(remotePath string, data []byte, perm ...fs.FileMode) error {
	fullPath := filepath.Join(c.Path, remotePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Remove first so a previous file's mode never leaks into this write.
	if _, err := os.Stat(fullPath); err == nil {
		if err := os.Remove(fullPath); err != nil {
			return fmt.Errorf("failed to remove existing file: %w", err)
		}
	}

	mode := fs.FileMode(0644)
	if len(perm) > 0 {
		mode = perm[0]
	}

	return os.WriteFile(fullPath, data, mode)
}
