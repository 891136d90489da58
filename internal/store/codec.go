package store

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/barberbook/internal/schema"
)

// Codec reads and writes raw tables in one file format.
type Codec interface {
	Read(r io.Reader) (schema.Table, error)
	Write(w io.Writer, t schema.Table) error
	Ext() string
}

// Registry holds codecs by file extension.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec. Panics on duplicate extension.
func (r *Registry) Register(c Codec) {
	key := strings.ToLower(c.Ext())
	if _, ok := r.codecs[key]; ok {
		panic("duplicate codec extension: " + key)
	}
	r.codecs[key] = c
}

// Get returns the codec for ext, or nil.
func (r *Registry) Get(ext string) Codec {
	return r.codecs[strings.ToLower(ext)]
}

// ForPath returns the codec matching the extension of path, or nil.
func (r *Registry) ForPath(path string) Codec {
	return r.Get(filepath.Ext(path))
}

// DefaultRegistry returns a registry with the CSV and XLSX codecs.
func DefaultRegistry(sheet string) *Registry {
	r := NewRegistry()
	r.Register(&CSVCodec{})
	r.Register(&XLSXCodec{Sheet: sheet})
	return r
}
