package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/barberbook/internal/artifact"
	"github.com/cleared-dev/barberbook/internal/schema"
)

// utf8BOM lets spreadsheet programs detect UTF-8 in the delimited form.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVCodec handles the delimited-text artifact form.
type CSVCodec struct{}

// Ext returns ".csv".
func (c *CSVCodec) Ext() string { return artifact.ExtCSV }

// Read parses a CSV table. A leading BOM is skipped and rows may vary in width.
func (c *CSVCodec) Read(r io.Reader) (schema.Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return schema.Table{}, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return schema.Table{}, nil
	}
	return schema.Table{Header: records[0], Rows: records[1:]}, nil
}

// Write writes a BOM, the header and every row.
func (c *CSVCodec) Write(w io.Writer, t schema.Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
