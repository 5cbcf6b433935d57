package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoReference is returned when a reference file exists in none of the data directories.
var ErrNoReference = errors.New("reference not found in any data directory")

// Loader handles reading YAML reference files (tier tables, chronicle) from
// a data directory fallback hierarchy. The first directory holding the file wins.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a new Data Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// Dirs returns the search path in priority order.
func (l *Loader) Dirs() []string {
	return l.dataDirs
}

// Load decodes the YAML file ref into target, searching the data directories sequentially.
func (l *Loader) Load(ref string, target any) error {
	if l == nil {
		return fmt.Errorf("%s: %w", ref, ErrNoReference)
	}
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(target); err != nil {
			return fmt.Errorf("failed to decode yaml reference %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("%s: %w", ref, ErrNoReference)
}

// Decode parses an in-memory YAML document, used for the embedded defaults.
func Decode(raw []byte, target any) error {
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode yaml: %w", err)
	}
	return nil
}
