package store

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/barberbook/internal/artifact"
	"github.com/cleared-dev/barberbook/internal/schema"
)

// DefaultSheet is the worksheet name used for spreadsheet artifacts.
const DefaultSheet = "Servicos"

// XLSXCodec handles the spreadsheet artifact form.
type XLSXCodec struct {
	Sheet string
}

// Ext returns ".xlsx".
func (c *XLSXCodec) Ext() string { return artifact.ExtXLSX }

func (c *XLSXCodec) sheet() string {
	if c.Sheet == "" {
		return DefaultSheet
	}
	return c.Sheet
}

// Read loads the named sheet, or the first sheet when it is missing.
func (c *XLSXCodec) Read(r io.Reader) (schema.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return schema.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := c.sheet()
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return schema.Table{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return schema.Table{}, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return schema.Table{}, nil
	}
	return schema.Table{Header: rows[0], Rows: rows[1:]}, nil
}

// Write stores the table on a single sheet. Numeric-looking cells are written
// as numbers; dates stay as DD/MM/YYYY text.
func (c *XLSXCodec) Write(w io.Writer, t schema.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := c.sheet()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := c.writeRow(f, sheet, 1, t.Header, nil); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	numeric := numericColumns(t.Header)
	for i, row := range t.Rows {
		if err := c.writeRow(f, sheet, i+2, row, numeric); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (c *XLSXCodec) writeRow(f *excelize.File, sheet string, rowNum int, cells []string, numeric map[int]bool) error {
	values := make([]any, len(cells))
	for i, cell := range cells {
		values[i] = cell
		if !numeric[i] {
			continue
		}
		if n, err := strconv.Atoi(cell); err == nil {
			values[i] = n
		} else if x, err := strconv.ParseFloat(cell, 64); err == nil && strconv.FormatFloat(x, 'f', -1, 64) == cell {
			values[i] = x
		}
	}
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &values)
}

// numericColumns marks the age, price and quantity columns of a display header.
func numericColumns(header []string) map[int]bool {
	want := map[string]bool{
		schema.Labels[schema.FieldAge]:      true,
		schema.Labels[schema.FieldPrice]:    true,
		schema.Labels[schema.FieldQuantity]: true,
	}
	cols := make(map[int]bool)
	for i, h := range header {
		if want[h] {
			cols[i] = true
		}
	}
	return cols
}
