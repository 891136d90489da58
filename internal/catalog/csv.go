package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	numFields = 2
	colName   = 0
	colPrice  = 1
)

// Header is the CSV header for catalog.csv.
var Header = []string{"servico", "preco"}

// ReadItems reads catalog.csv.
func ReadItems(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var items []Item
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteItems writes catalog.csv.
func WriteItems(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalItem converts an Item to a CSV row.
func MarshalItem(item Item) []string {
	row := make([]string, numFields)
	row[colName] = item.Name
	row[colPrice] = item.Price.StringFixed(2)
	return row
}

// UnmarshalItem converts a CSV row to an Item.
func UnmarshalItem(record []string) (Item, error) {
	if len(record) != numFields {
		return Item{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	name := strings.TrimSpace(record[colName])
	if name == "" {
		return Item{}, fmt.Errorf("empty service name")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[colPrice]))
	if err != nil {
		return Item{}, fmt.Errorf("parsing price %q: %w", record[colPrice], err)
	}
	if price.IsNegative() {
		return Item{}, fmt.Errorf("negative price %s for %q", price, name)
	}

	return Item{Name: name, Price: price}, nil
}
