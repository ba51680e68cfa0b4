package connectors

import (
	"io/fs"
	"strings"
)

// Connector is an install destination: a place the server assembler can
// write files to. Writes may happen from several goroutines at once, so
// implementations must be safe for concurrent SendFileFromBytes calls.
type Connector interface {
	NewFromURI(uri string) Connector

	GetURI() string

	Connect() error
	IsConnected() bool
	Close() error

	HasFile(remotePath string) bool
	SendFileFromBytes(remotePath string, data []byte, perm ...fs.FileMode) error
}

var CONNECTORS = map[string]Connector{
	"sftp": new(SFTPConnector),
	"file": new(FileConnector),
}

func FindConnectorFromURI(uri string) Connector {
	for scheme, connector := range CONNECTORS {
		if strings.HasPrefix(uri, scheme+"://") {
			return connector.NewFromURI(uri)
		}
	}

	return nil
}
