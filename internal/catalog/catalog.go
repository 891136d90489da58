// Package catalog holds the fixed service price list.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// FileName is the catalog file inside the storage root.
const FileName = "catalog.csv"

// Item is one priced service.
type Item struct {
	Name  string
	Price decimal.Decimal
}

// NotFoundError is returned when a service is not in the catalog.
// Available lists every valid service so callers can report them.
type NotFoundError struct {
	Name      string
	Available []Item
}

func (e *NotFoundError) Error() string {
	names := make([]string, len(e.Available))
	for i, it := range e.Available {
		names[i] = it.Name
	}
	return fmt.Sprintf("service %q not in catalog (available: %s)", e.Name, strings.Join(names, ", "))
}

// Catalog provides case-insensitive, read-only price lookup.
type Catalog struct {
	items  []Item
	byName map[string]Item
}

// New creates a Catalog from items. A later duplicate name replaces the earlier price.
func New(items []Item) *Catalog {
	c := &Catalog{byName: make(map[string]Item, len(items))}
	pos := make(map[string]int, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		if i, dup := pos[key]; dup {
			c.items[i] = it
		} else {
			pos[key] = len(c.items)
			c.items = append(c.items, it)
		}
		c.byName[key] = it
	}
	return c
}

// Load reads catalog.csv from dir, falling back to Default when the file is absent.
func Load(dir string) (*Catalog, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(Default()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog %s has no services", path)
	}
	return New(items), nil
}

// Save writes the catalog to dir/catalog.csv.
func (c *Catalog) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating catalog dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	if err := WriteItems(f, c.items); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// PriceOf returns the price of a service, matched case-insensitively.
func (c *Catalog) PriceOf(name string) (decimal.Decimal, error) {
	it, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return decimal.Decimal{}, &NotFoundError{Name: name, Available: c.All()}
	}
	return it.Price, nil
}

// All returns every item in catalog order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
