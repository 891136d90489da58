// Package ledger holds the in-memory table of services rendered during a session.
package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/barberbook/internal/catalog"
	"github.com/cleared-dev/barberbook/internal/model"
)

// Pricer looks up the current price of a service.
type Pricer interface {
	PriceOf(service string) (decimal.Decimal, error)
}

// UpsertStatus is the expected result of an Upsert.
type UpsertStatus int

const (
	Created UpsertStatus = iota
	Updated
	UnknownService
)

func (s UpsertStatus) String() string {
	switch s {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case UnknownService:
		return "unknown-service"
	default:
		return "invalid"
	}
}

// UpsertOutcome reports what Upsert did. Available is set only for UnknownService.
type UpsertOutcome struct {
	Status    UpsertStatus
	Record    model.ServiceRecord
	Available []catalog.Item
}

// Mutated reports whether the ledger changed.
func (o UpsertOutcome) Mutated() bool {
	return o.Status == Created || o.Status == Updated
}

// RemoveStatus is the expected result of RemoveLast.
type RemoveStatus int

const (
	Removed RemoveStatus = iota
	EmptyLedger
)

func (s RemoveStatus) String() string {
	if s == Removed {
		return "removed"
	}
	return "empty-ledger"
}

// RemoveOutcome reports what RemoveLast did.
type RemoveOutcome struct {
	Status RemoveStatus
	Record model.ServiceRecord
}

// Ledger is an ordered record table. For any (client, service) key there is at
// most one record; repeats increment its quantity.
type Ledger struct {
	records []model.ServiceRecord
	pricer  Pricer
	now     func() time.Time
}

// New creates a Ledger over records, which are used in order. A nil now selects time.Now.
func New(pricer Pricer, records []model.ServiceRecord, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	l := &Ledger{pricer: pricer, now: now}
	l.records = append(l.records, records...)
	return l
}

// Upsert records one service for client. A matching (client, service) record has
// its quantity incremented and keeps its price, age and date; otherwise a new
// record is appended at the current catalog price.
func (l *Ledger) Upsert(client string, age int, service string) (UpsertOutcome, error) {
	client, service = strings.TrimSpace(client), strings.TrimSpace(service)
	price, err := l.pricer.PriceOf(service)
	if err != nil {
		return unknownService(err)
	}

	key := model.NewKey(client, service)
	for i := range l.records {
		if l.records[i].Key() == key {
			l.records[i].Quantity++
			return UpsertOutcome{Status: Updated, Record: l.records[i]}, nil
		}
	}

	rec := model.ServiceRecord{
		Client:    client,
		Age:       max(age, 0),
		Service:   service,
		UnitPrice: price,
		Quantity:  1,
		Date:      l.now().Format(model.DateFormat),
	}
	l.records = append(l.records, rec)
	return UpsertOutcome{Status: Created, Record: rec}, nil
}

func unknownService(err error) (UpsertOutcome, error) {
	var nf *catalog.NotFoundError
	if errors.As(err, &nf) {
		return UpsertOutcome{Status: UnknownService, Available: nf.Available}, nil
	}
	return UpsertOutcome{}, err
}

// RemoveLast deletes the most recently inserted record.
func (l *Ledger) RemoveLast() RemoveOutcome {
	if len(l.records) == 0 {
		return RemoveOutcome{Status: EmptyLedger}
	}
	last := l.records[len(l.records)-1]
	l.records = l.records[:len(l.records)-1]
	return RemoveOutcome{Status: Removed, Record: last}
}

// Records returns a copy of the records in insertion order.
func (l *Ledger) Records() []model.ServiceRecord {
	out := make([]model.ServiceRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}
