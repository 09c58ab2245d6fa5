// Package covers stores the cover images of works on disk.
//
// The store is plain file I/O around the cover naming contract: one JPEG
// per work and rendition, named "{paddedId}_img_{variant}.jpg". Fetching
// and producing image content is someone else's job.
package covers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"audioworks/internal/rjcode"
)

// Store reads and writes cover images under a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating it if necessary.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cover directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the on-disk location for one rendition of a work's cover.
func (s *Store) Path(id int, variant rjcode.Variant) string {
	return filepath.Join(s.dir, rjcode.CoverName(id, variant))
}

// Save writes one cover rendition, replacing any previous file.
func (s *Store) Save(id int, variant rjcode.Variant, r io.Reader) error {
	path := s.Path(id, variant)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving cover %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("saving cover %s: %w", path, err)
	}
	return f.Close()
}

// Open opens one cover rendition for reading.
func (s *Store) Open(id int, variant rjcode.Variant) (*os.File, error) {
	f, err := os.Open(s.Path(id, variant))
	if err != nil {
		return nil, fmt.Errorf("opening cover for work %s: %w", rjcode.Format(id), err)
	}
	return f, nil
}

// Exists reports whether one cover rendition is already stored.
func (s *Store) Exists(id int, variant rjcode.Variant) bool {
	_, err := os.Stat(s.Path(id, variant))
	return err == nil
}
