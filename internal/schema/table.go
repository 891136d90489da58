// Package schema reconciles ledger tables written by different program
// versions into one canonical record shape.
package schema

import (
	"strconv"

	"github.com/cleared-dev/barberbook/internal/model"
)

// Field is a canonical column name.
type Field string

const (
	FieldClient   Field = "client"
	FieldAge      Field = "age"
	FieldService  Field = "service"
	FieldPrice    Field = "price"
	FieldQuantity Field = "quantity"
	FieldDate     Field = "date"
)

// Canonical is the fixed column order of every normalized table.
var Canonical = []Field{FieldClient, FieldAge, FieldService, FieldPrice, FieldQuantity, FieldDate}

// Required fields must be present in any loadable artifact.
var Required = []Field{FieldService, FieldPrice, FieldQuantity}

// Labels maps canonical fields to the localized headers written to disk.
var Labels = map[Field]string{
	FieldClient:   "Cliente",
	FieldAge:      "Idade",
	FieldService:  "Serviço",
	FieldPrice:    "Preço (R$)",
	FieldQuantity: "Quantidade",
	FieldDate:     "Data",
}

// Table is a raw grid as read from or written to an artifact.
type Table struct {
	Header []string
	Rows   [][]string
}

// HeaderLabels returns the display header in canonical order.
func HeaderLabels() []string {
	h := make([]string, len(Canonical))
	for i, f := range Canonical {
		h[i] = Labels[f]
	}
	return h
}

// FromRecords projects records into a Table with display headers.
// Prices are written unrounded so a reload reproduces them exactly.
func FromRecords(records []model.ServiceRecord) Table {
	t := Table{Header: HeaderLabels(), Rows: make([][]string, len(records))}
	for i, r := range records {
		t.Rows[i] = []string{
			r.Client,
			strconv.Itoa(r.Age),
			r.Service,
			r.UnitPrice.String(),
			strconv.Itoa(r.Quantity),
			r.Date,
		}
	}
	return t
}
