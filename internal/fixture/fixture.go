// Package fixture generates synthetic ledgers for demos and tests.
package fixture

import (
	"math/rand/v2"
	"time"

	"github.com/cleared-dev/barberbook/internal/catalog"
	"github.com/cleared-dev/barberbook/internal/model"
)

var firstNames = []string{
	"João", "Maria", "Pedro", "Ana", "Lucas", "Carla", "Marcos", "Juliana",
	"Fernando", "Patrícia", "Rafael", "Amanda", "Daniel", "Tatiane", "Gustavo",
	"Bruna", "Rodrigo", "Camila", "Felipe", "Aline", "André", "Vanessa", "Roberto",
	"Isabela", "Ricardo", "Laura", "Thiago", "Larissa", "Eduardo", "Mariana",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves",
	"Pereira", "Gomes", "Costa", "Martins", "Ribeiro", "Carvalho", "Lima", "Monteiro",
	"Almeida", "Nascimento", "Mendes", "Barbosa", "Rocha", "Cunha", "Moreira",
	"Cardoso", "Teixeira", "Dias", "Freitas", "Correia", "Moraes", "Castro", "Araújo",
}

const (
	minAge         = 10
	maxAge         = 60
	maxServices    = 3
	maxQuantity    = 2
	defaultClients = 50
)

// Generator produces random clients, each with 1-3 distinct catalog services.
type Generator struct {
	Items []catalog.Item
	Rand  *rand.Rand
	Now   func() time.Time
}

// Generate returns records for n clients (50 when n <= 0), all dated today.
// The same client name drawn twice yields separate visits, so records are
// merged on (client, service) to keep one row per key.
func (g *Generator) Generate(n int) []model.ServiceRecord {
	if n <= 0 {
		n = defaultClients
	}
	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	date := now().Format(model.DateFormat)

	var out []model.ServiceRecord
	pos := make(map[model.Key]int)
	for range n {
		name := firstNames[rng.IntN(len(firstNames))] + " " + lastNames[rng.IntN(len(lastNames))]
		age := minAge + rng.IntN(maxAge-minAge+1)

		k := min(1+rng.IntN(maxServices), len(g.Items))
		for _, idx := range rng.Perm(len(g.Items))[:k] {
			item := g.Items[idx]
			qty := 1 + rng.IntN(maxQuantity)
			key := model.NewKey(name, item.Name)
			if i, ok := pos[key]; ok {
				out[i].Quantity += qty
				continue
			}
			pos[key] = len(out)
			out = append(out, model.ServiceRecord{
				Client:    name,
				Age:       age,
				Service:   item.Name,
				UnitPrice: item.Price,
				Quantity:  qty,
				Date:      date,
			})
		}
	}
	return out
}
