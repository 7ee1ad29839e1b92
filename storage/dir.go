package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a Backend storing one file per key in a directory.
//
// Project and worker lists are stored as JSONL files so that they diff well
// under version control, e.g. projects.jsonl and workers.jsonl.
type Dir struct {
	path string
}

// NewDir returns a Dir backend rooted at path. The directory is created on
// first write.
func NewDir(path string) *Dir { return &Dir{path: path} }

// filename returns the file holding key.
func (d *Dir) filename(key string) string {
	name := strings.TrimPrefix(key, "workledger_")
	ext := ".json"
	if key == ProjectsKey || key == WorkersKey {
		ext = ".jsonl"
	}
	return filepath.Join(d.path, name+ext)
}

func (d *Dir) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.filename(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return data, nil
}

// rename moves files in place.
var rename = os.Rename

// Put writes every entry to a temporary file first, then renames them all in
// place. The files replaced are kept aside until every rename succeeded, and
// put back when one fails.
func (d *Dir) Put(entries ...Entry) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", d.path, err)
	}
	temps := make([]string, 0, len(entries))
	cleanup := func() {
		for _, t := range temps {
			os.Remove(t)
		}
	}
	for _, e := range entries {
		f, err := os.CreateTemp(d.path, ".tmp-*")
		if err != nil {
			cleanup()
			return fmt.Errorf("could not write %q: %w", e.Key, err)
		}
		temps = append(temps, f.Name())
		_, err = f.Write(e.Value)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			cleanup()
			return fmt.Errorf("could not write %q: %w", e.Key, err)
		}
	}

	// saved records a target file and its previous version, empty when the
	// target did not exist.
	type saved struct{ target, backup string }
	var done []saved
	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			if done[i].backup == "" {
				os.Remove(done[i].target)
			} else {
				os.Rename(done[i].backup, done[i].target)
			}
		}
		cleanup()
	}
	for i, e := range entries {
		s := saved{target: d.filename(e.Key)}
		if _, err := os.Stat(s.target); err == nil {
			s.backup = s.target + ".bak"
			if err := rename(s.target, s.backup); err != nil {
				rollback()
				return fmt.Errorf("could not save %q: %w", e.Key, err)
			}
		}
		if err := rename(temps[i], s.target); err != nil {
			if s.backup != "" {
				os.Rename(s.backup, s.target)
			}
			rollback()
			return fmt.Errorf("could not save %q: %w", e.Key, err)
		}
		done = append(done, s)
	}
	for _, s := range done {
		if s.backup != "" {
			os.Remove(s.backup)
		}
	}
	return nil
}

func (d *Dir) Delete(key string) error {
	err := os.Remove(d.filename(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not delete %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Close() error { return nil }
