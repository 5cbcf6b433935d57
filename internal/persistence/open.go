package persistence

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Store drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Options selects and locates a store.
type Options struct {
	Driver     string
	DataDir    string
	SQLitePath string // defaults to <DataDir>/archivist.db
}

// Open builds the configured store.
func Open(opts Options) (*Documents, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverJSON:
		return OpenJSON(opts.DataDir)
	case DriverSQLite:
		path := opts.SQLitePath
		if path == "" {
			path = filepath.Join(opts.DataDir, "archivist.db")
		}
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown store driver %q (want %s or %s)", opts.Driver, DriverJSON, DriverSQLite)
}
