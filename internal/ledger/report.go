package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/barberbook/internal/model"
)

// ClientGroup is one client's records and subtotal.
type ClientGroup struct {
	Client   string
	Records  []model.ServiceRecord
	Subtotal decimal.Decimal
}

// Listing groups records by client in first-seen order.
type Listing struct {
	Groups []ClientGroup
	Total  decimal.Decimal
}

// List groups records by client (case-insensitive), keeping the first-seen spelling.
func (l *Ledger) List() Listing {
	out := Listing{Total: decimal.Zero}
	pos := make(map[string]int)
	for _, r := range l.records {
		key := clientKey(r.Client)
		i, ok := pos[key]
		if !ok {
			i = len(out.Groups)
			pos[key] = i
			out.Groups = append(out.Groups, ClientGroup{Client: r.Client, Subtotal: decimal.Zero})
		}
		g := &out.Groups[i]
		g.Records = append(g.Records, r)
		g.Subtotal = g.Subtotal.Add(r.Total())
		out.Total = out.Total.Add(r.Total())
	}
	return out
}

// Leader is a leaderboard entry. Client is empty when the ledger is empty.
type Leader struct {
	Client   string
	Quantity int
	Revenue  decimal.Decimal
}

// ServiceTotal aggregates one service across all clients.
type ServiceTotal struct {
	Service  string
	Quantity int
	Revenue  decimal.Decimal
}

// Summary aggregates the whole ledger.
type Summary struct {
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	TopByQuantity Leader
	TopByRevenue  Leader
	ByService     []ServiceTotal
}

// Summary computes totals and leaderboards. Ties go to the client seen first.
func (l *Ledger) Summary() Summary {
	s := Summary{
		TotalRevenue:  decimal.Zero,
		TopByQuantity: Leader{Revenue: decimal.Zero},
		TopByRevenue:  Leader{Revenue: decimal.Zero},
	}

	var clients []Leader
	clientPos := make(map[string]int)
	servicePos := make(map[string]int)
	for _, r := range l.records {
		s.TotalQuantity += r.Quantity
		s.TotalRevenue = s.TotalRevenue.Add(r.Total())

		key := clientKey(r.Client)
		i, ok := clientPos[key]
		if !ok {
			i = len(clients)
			clientPos[key] = i
			clients = append(clients, Leader{Client: r.Client, Revenue: decimal.Zero})
		}
		clients[i].Quantity += r.Quantity
		clients[i].Revenue = clients[i].Revenue.Add(r.Total())

		skey := strings.ToLower(strings.TrimSpace(r.Service))
		j, ok := servicePos[skey]
		if !ok {
			j = len(s.ByService)
			servicePos[skey] = j
			s.ByService = append(s.ByService, ServiceTotal{Service: r.Service, Revenue: decimal.Zero})
		}
		s.ByService[j].Quantity += r.Quantity
		s.ByService[j].Revenue = s.ByService[j].Revenue.Add(r.Total())
	}

	for i, c := range clients {
		// Strict comparisons keep the earliest client on ties.
		if i == 0 || c.Quantity > s.TopByQuantity.Quantity {
			s.TopByQuantity = c
		}
		if i == 0 || c.Revenue.GreaterThan(s.TopByRevenue.Revenue) {
			s.TopByRevenue = c
		}
	}
	return s
}

func clientKey(client string) string {
	return strings.ToLower(strings.TrimSpace(client))
}
