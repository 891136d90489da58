package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/barberbook/internal/catalog"
	"github.com/cleared-dev/barberbook/internal/ledger"
)

var (
	colorAccent = lipgloss.Color("#3AA99F")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	moneyStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)

func money(d decimal.Decimal) string {
	return "R$" + d.StringFixed(2)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func renderListing(w io.Writer, l ledger.Listing) {
	if len(l.Groups) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Nenhum serviço registrado."))
		return
	}

	t := newTable("CLIENTE", "IDADE", "SERVIÇO", "PREÇO", "QTD", "TOTAL", "DATA")
	for _, g := range l.Groups {
		for _, r := range g.Records {
			t.Row(r.Client, ageText(r.Age), r.Service, money(r.UnitPrice), strconv.Itoa(r.Quantity), money(r.Total()), r.Date)
		}
		t.Row("", "", "", "", "", moneyStyle.Render(money(g.Subtotal)), mutedStyle.Render("subtotal "+g.Client))
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("TOTAL GERAL"), moneyStyle.Render(money(l.Total)))
}

func renderSummary(w io.Writer, s ledger.Summary) {
	if s.TotalQuantity == 0 && len(s.ByService) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Nenhum serviço registrado."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render("RESUMO DO DIA"))
	fmt.Fprintf(w, "Total de serviços: %d\n", s.TotalQuantity)
	fmt.Fprintf(w, "Valor arrecadado: %s\n", moneyStyle.Render(money(s.TotalRevenue)))
	fmt.Fprintf(w, "Cliente com mais serviços: %s (%d)\n", s.TopByQuantity.Client, s.TopByQuantity.Quantity)
	fmt.Fprintf(w, "Cliente com maior gasto: %s (%s)\n", s.TopByRevenue.Client, money(s.TopByRevenue.Revenue))

	t := newTable("SERVIÇO", "QTD", "TOTAL")
	for _, st := range s.ByService {
		t.Row(st.Service, strconv.Itoa(st.Quantity), money(st.Revenue))
	}
	fmt.Fprintln(w, t.String())
}

func renderCatalog(w io.Writer, items []catalog.Item) {
	t := newTable("SERVIÇO", "PREÇO")
	for _, it := range items {
		t.Row(it.Name, money(it.Price))
	}
	fmt.Fprintln(w, t.String())
}

func ageText(age int) string {
	if age == 0 {
		return "-"
	}
	return strconv.Itoa(age)
}
