// Package storage persists the WorkLedger records as keyed documents.
//
// A Backend holds one document per key: the project and worker lists, the
// settings, and the authentication state. Backends are selected by URI with
// Open:
//
//	.workledger            a directory of files (default)
//	dir:/path/to/data      same, explicit
//	sqlite:/path/to/wl.db  a single SQLite table
//	redis://host:6379/0    a Redis database
//	memory:                a volatile in-process map
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Keys of the persisted records.
const (
	ProjectsKey = "workledger_projects"
	WorkersKey  = "workledger_workers"
	SettingsKey = "workledger_settings"
	AuthKey     = "workledger_auth"
	// MilestonesKey holds the project timelines of older data sets, before
	// they were folded into the projects.
	MilestonesKey = "workledger_milestones"
)

// ErrNotFound is returned by Get when no record exists for the key.
var ErrNotFound = errors.New("record not found")

// Entry is one keyed record to write.
type Entry struct {
	Key   string
	Value []byte
}

// Backend is a key/value store of persisted records.
//
// Put writes all the entries or none of them.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(entries ...Entry) error
	Delete(key string) error
	Close() error
}

// Open returns the backend described by uri.
func Open(uri string) (Backend, error) {
	switch {
	case uri == "":
		return nil, fmt.Errorf("empty storage location")
	case uri == "memory:":
		return NewMemory(), nil
	case strings.HasPrefix(uri, "redis://"), strings.HasPrefix(uri, "rediss://"):
		return OpenRedis(uri)
	case strings.HasPrefix(uri, "sqlite:"):
		return OpenSQLite(strings.TrimPrefix(uri, "sqlite:"))
	case strings.HasPrefix(uri, "dir:"):
		return NewDir(strings.TrimPrefix(uri, "dir:")), nil
	}
	switch filepath.Ext(uri) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(uri)
	}
	return NewDir(uri), nil
}
