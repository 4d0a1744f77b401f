// Package attachment persists user-supplied files (tenant photos, documents,
// receipts) outside the database. Files are stored under a name derived from
// their content, so attaching the same file twice lands on the same path.
package attachment

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"tenant-ledger/internal/ledger"
)

// Category selects which storage directory a file lands in.
type Category string

const (
	CategoryPhotos    Category = "photos"
	CategoryDocuments Category = "documents"
)

// Store copies files into content-addressed storage directories.
type Store struct {
	photoDir string
	docsDir  string
}

// NewStore initializes a store over the two category directories
func NewStore(photoDir, docsDir string) *Store {
	return &Store{photoDir: photoDir, docsDir: docsDir}
}

// Init creates the storage directories if they do not exist yet.
func (s *Store) Init() error {
	for _, dir := range []string{s.photoDir, s.docsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ledger.StorageError{Op: "create storage directory", Err: err}
		}
	}
	return nil
}

// Save copies the file at sourcePath into the category's directory under a
// content-hashed name and returns the destination path.
//
// A missing source is not an error: it returns ("", false, nil) so the caller
// can tell "nothing attached" apart from an I/O failure. If a file with the
// same content already exists at the destination the copy overwrites it with
// identical bytes; that is the dedup behavior, not a conflict.
func (s *Store) Save(sourcePath string, category Category) (string, bool, error) {
	dir, err := s.dirFor(category)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(sourcePath); os.IsNotExist(err) {
		return "", false, nil
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", false, &ledger.StorageError{Op: "read attachment", Err: err}
	}

	// Content-hashed filename: stable digest plus the original extension.
	// Dedup only needs a stable digest, not a cryptographic one.
	h := fnv.New64a()
	h.Write(data)
	name := fmt.Sprintf("%016x%s", h.Sum64(), filepath.Ext(sourcePath))

	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", false, &ledger.StorageError{Op: "write attachment", Err: err}
	}
	return dest, true, nil
}

func (s *Store) dirFor(category Category) (string, error) {
	switch category {
	case CategoryPhotos:
		return s.photoDir, nil
	case CategoryDocuments:
		return s.docsDir, nil
	default:
		return "", &ledger.ValidationError{Field: "category", Reason: "must be photos or documents"}
	}
}
