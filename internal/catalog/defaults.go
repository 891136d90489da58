package catalog

import "github.com/shopspring/decimal"

// Default returns the built-in price list.
func Default() []Item {
	return []Item{
		{Name: "corte_masculino", Price: decimal.NewFromInt(35)},
		{Name: "barba", Price: decimal.NewFromInt(25)},
		{Name: "acabamento_pezinho", Price: decimal.NewFromInt(10)},
		{Name: "pigmentacao", Price: decimal.NewFromInt(35)},
		{Name: "sobrancelhas", Price: decimal.NewFromInt(10)},
		{Name: "barboterapia", Price: decimal.NewFromInt(35)},
		{Name: "depilacao_nariz_orelha", Price: decimal.NewFromInt(20)},
		{Name: "selagem", Price: decimal.NewFromInt(80)},
		{Name: "limpeza_pele", Price: decimal.NewFromInt(50)},
		{Name: "hidratacao", Price: decimal.NewFromInt(15)},
		{Name: "reflexo", Price: decimal.NewFromInt(50)},
		{Name: "platinado", Price: decimal.NewFromInt(100)},
		{Name: "camuflagem_cabelo", Price: decimal.NewFromInt(20)},
		{Name: "camuflagem_barba", Price: decimal.NewFromInt(10)},
	}
}
