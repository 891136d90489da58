package schema

import (
	"fmt"
	"strings"
)

// frame is a mutable, column-addressable view of a Table used while rules run.
type frame struct {
	cols []string
	rows [][]string
}

func newFrame(t Table) *frame {
	f := &frame{cols: append([]string(nil), t.Header...)}
	for _, row := range t.Rows {
		if blankRow(row) {
			continue
		}
		padded := make([]string, len(f.cols))
		copy(padded, row)
		f.rows = append(f.rows, padded)
	}
	return f
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// index returns the position of the first column named col, or -1.
func (f *frame) index(col string) int {
	for i, c := range f.cols {
		if c == col {
			return i
		}
	}
	return -1
}

func (f *frame) addColumn(col, value string) {
	f.cols = append(f.cols, col)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], value)
	}
}

// Rule is one step of normalization.
type Rule struct {
	Name  string
	apply func(*frame) error
}

// LowercaseLabels trims and lowercases every column label.
func LowercaseLabels() Rule {
	return Rule{Name: "lowercase-labels", apply: func(f *frame) error {
		for i, c := range f.cols {
			f.cols[i] = strings.ToLower(strings.TrimSpace(c))
		}
		return nil
	}}
}

// Rename maps legacy labels to canonical fields. When several labels map to the
// same field, the first column wins and later ones are left to be dropped.
func Rename(aliases map[string]Field) Rule {
	return Rule{Name: "rename-legacy", apply: func(f *frame) error {
		seen := make(map[Field]bool)
		for i, c := range f.cols {
			if f.index(c) != i {
				continue
			}
			field, ok := aliases[c]
			if !ok || seen[field] {
				continue
			}
			seen[field] = true
			f.cols[i] = string(field)
		}
		return nil
	}}
}

// Require fails with ErrMalformedArtifact if any field is missing.
func Require(fields ...Field) Rule {
	return Rule{Name: "require", apply: func(f *frame) error {
		var missing []string
		for _, field := range fields {
			if f.index(string(field)) < 0 {
				missing = append(missing, string(field))
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing %s", ErrMalformedArtifact, strings.Join(missing, ", "))
		}
		return nil
	}}
}

// Default adds field with value() on every row when the column is absent.
func Default(field Field, value func() string) Rule {
	return Rule{Name: "default-" + string(field), apply: func(f *frame) error {
		if f.index(string(field)) < 0 {
			f.addColumn(string(field), value())
		}
		return nil
	}}
}

// LegacyLabels are header spellings found in older artifacts, already lowercased.
var LegacyLabels = map[string]Field{
	"client":     FieldClient,
	"cliente":    FieldClient,
	"nome":       FieldClient,
	"age":        FieldAge,
	"idade":      FieldAge,
	"service":    FieldService,
	"serviço":    FieldService,
	"servico":    FieldService,
	"price":      FieldPrice,
	"preço (r$)": FieldPrice,
	"preco (r$)": FieldPrice,
	"preço":      FieldPrice,
	"preco":      FieldPrice,
	"quantity":   FieldQuantity,
	"quantidade": FieldQuantity,
	"qtd":        FieldQuantity,
	"date":       FieldDate,
	"data":       FieldDate,
}
