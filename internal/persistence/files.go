package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileBackend keeps one JSON file per document, either under dir or at an
// explicit per-document path.
type fileBackend struct {
	dir   string
	paths map[string]string
}

// OpenJSON returns a store writing countries.json, warlog.json and
// turn_tracker.json under dir, creating the directory when needed.
func OpenJSON(dir string) (*Documents, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &Documents{b: &fileBackend{dir: dir}}, nil
}

// OpenFiles returns a store over explicitly named files, keyed by document
// name (CountriesDoc, WarsDoc, CalendarDoc). Documents without a path read
// as empty and cannot be written.
func OpenFiles(paths map[string]string) *Documents {
	return &Documents{b: &fileBackend{paths: paths}}
}

// path returns the file backing a document.
func (f *fileBackend) path(name string) (string, bool) {
	if p, ok := f.paths[name]; ok {
		return p, p != ""
	}
	if f.dir == "" {
		return "", false
	}
	return filepath.Join(f.dir, name), true
}

func (f *fileBackend) read(name string) ([]byte, error) {
	path, ok := f.path(name)
	if !ok {
		return nil, nil
	}
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return body, err
}

// write replaces the file through a temp file and rename so a reader never
// observes a partial document.
func (f *fileBackend) write(name string, body []byte) error {
	path, ok := f.path(name)
	if !ok {
		return fmt.Errorf("no file configured for %s", name)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (f *fileBackend) close() error {
	return nil
}
