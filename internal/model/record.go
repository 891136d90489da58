package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DateFormat is the day/month/year stamp stored in every record.
const DateFormat = "02/01/2006"

// ServiceRecord is one row of the ledger: a service rendered to a client.
type ServiceRecord struct {
	Client    string
	Age       int             // 0 = unknown
	Service   string          // original casing, matched case-insensitively
	UnitPrice decimal.Decimal // catalog price when the row was created
	Quantity  int
	Date      string //nolint:revive // DD/MM/YYYY, set on creation only
}

// Key identifies a record for upsert matching.
type Key struct {
	Client  string
	Service string
}

// NewKey normalizes a client/service pair into a match key.
func NewKey(client, service string) Key {
	return Key{
		Client:  strings.ToLower(strings.TrimSpace(client)),
		Service: strings.ToLower(strings.TrimSpace(service)),
	}
}

// Key returns the record's normalized match key.
func (r ServiceRecord) Key() Key {
	return NewKey(r.Client, r.Service)
}

// Total returns UnitPrice × Quantity, unrounded.
func (r ServiceRecord) Total() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}
