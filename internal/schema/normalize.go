package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/barberbook/internal/model"
)

// ErrMalformedArtifact means a table lacks the columns needed to build records.
var ErrMalformedArtifact = errors.New("malformed artifact")

// DefaultPlaceholder is the client assigned to rows from artifacts without a client column.
const DefaultPlaceholder = "geral"

// Normalizer turns raw tables into canonical records by running its rules in order.
type Normalizer struct {
	Rules []Rule
}

// NewNormalizer returns the standard rule set. An empty placeholder selects
// DefaultPlaceholder; a nil now selects time.Now.
func NewNormalizer(placeholder string, now func() time.Time) *Normalizer {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	if now == nil {
		now = time.Now
	}
	return &Normalizer{Rules: []Rule{
		LowercaseLabels(),
		Rename(LegacyLabels),
		Require(Required...),
		Default(FieldClient, func() string { return placeholder }),
		Default(FieldAge, func() string { return "0" }),
		Default(FieldDate, func() string { return now().Format(model.DateFormat) }),
	}}
}

// Normalize applies the rules, coerces numeric columns and projects to canonical order.
// Columns outside the canonical set are dropped.
func (n *Normalizer) Normalize(t Table) ([]model.ServiceRecord, error) {
	f := newFrame(t)
	for _, r := range n.Rules {
		if err := r.apply(f); err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name, err)
		}
	}

	idx := make(map[Field]int, len(Canonical))
	for _, field := range Canonical {
		i := f.index(string(field))
		if i < 0 {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedArtifact, field)
		}
		idx[field] = i
	}

	records := make([]model.ServiceRecord, 0, len(f.rows))
	for _, row := range f.rows {
		records = append(records, model.ServiceRecord{
			Client:    strings.TrimSpace(row[idx[FieldClient]]),
			Age:       CoerceInt(row[idx[FieldAge]]),
			Service:   strings.TrimSpace(row[idx[FieldService]]),
			UnitPrice: CoercePrice(row[idx[FieldPrice]]),
			Quantity:  CoerceInt(row[idx[FieldQuantity]]),
			Date:      strings.TrimSpace(row[idx[FieldDate]]),
		})
	}
	return records, nil
}

// CoercePrice parses a price cell, accepting an "R$" prefix and a comma
// decimal separator. Anything unparseable or negative is zero.
func CoercePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CoerceInt parses an integer cell. Integral decimals such as "2.0" are
// accepted; anything else, including negatives, is zero.
func CoerceInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return max(n, 0)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.IsNegative() {
		return 0
	}
	return int(d.IntPart())
}
