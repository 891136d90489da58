package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordKey(t *testing.T) {
	tests := []struct {
		client, service string
		want            Key
	}{
		{"Ana", "Barba", Key{"ana", "barba"}},
		{"  ANA ", "barba", Key{"ana", "barba"}},
		{"João Silva", "CORTE_MASCULINO", Key{"joão silva", "corte_masculino"}},
		{"", "", Key{}},
	}
	for _, tt := range tests {
		rec := ServiceRecord{Client: tt.client, Service: tt.service}
		assert.Equal(t, tt.want, rec.Key(), "Key(%q, %q)", tt.client, tt.service)
	}
}

func TestRecordTotal(t *testing.T) {
	rec := ServiceRecord{UnitPrice: decimal.RequireFromString("33.33"), Quantity: 3}
	assert.True(t, rec.Total().Equal(decimal.RequireFromString("99.99")), "got %s", rec.Total())

	rec.Quantity = 0
	assert.True(t, rec.Total().IsZero())
}
