// Package store persists ledger records to dated artifacts.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/barberbook/internal/model"
	"github.com/cleared-dev/barberbook/internal/schema"
)

// WriteError reports a failed save. The caller decides whether to retry.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Store reads and writes artifacts through a codec registry.
type Store struct {
	codecs     *Registry
	normalizer *schema.Normalizer
}

// New creates a Store.
func New(codecs *Registry, normalizer *schema.Normalizer) *Store {
	return &Store{codecs: codecs, normalizer: normalizer}
}

// ReadRaw returns the raw table at path. found is false when the file does not exist.
// Content the codec cannot parse fails with schema.ErrMalformedArtifact.
func (s *Store) ReadRaw(path string) (t schema.Table, found bool, err error) {
	codec := s.codecs.ForPath(path)
	if codec == nil {
		return schema.Table{}, false, fmt.Errorf("no codec for %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return schema.Table{}, false, nil
	}
	if err != nil {
		return schema.Table{}, false, fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()

	t, err = codec.Read(f)
	if err != nil {
		return schema.Table{}, true, fmt.Errorf("reading artifact %s: %w: %v", path, schema.ErrMalformedArtifact, err)
	}
	return t, true, nil
}

// Load reads and normalizes the artifact at path. A missing file yields no
// records and found=false. Tables lacking required columns fail with an error
// wrapping schema.ErrMalformedArtifact.
func (s *Store) Load(path string) (records []model.ServiceRecord, found bool, err error) {
	t, found, err := s.ReadRaw(path)
	if err != nil || !found {
		return nil, found, err
	}

	records, err = s.normalizer.Normalize(t)
	if err != nil {
		return nil, true, fmt.Errorf("normalizing %s: %w", path, err)
	}
	return records, true, nil
}

// Save overwrites path with records in canonical column order. Every failure is
// returned as a *WriteError.
func (s *Store) Save(path string, records []model.ServiceRecord) error {
	codec := s.codecs.ForPath(path)
	if codec == nil {
		return &WriteError{Path: path, Err: fmt.Errorf("no codec for %s", filepath.Ext(path))}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("creating storage dir: %w", err)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("creating artifact: %w", err)}
	}

	if err := codec.Write(f, schema.FromRecords(records)); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("closing artifact: %w", err)}
	}
	return nil
}
