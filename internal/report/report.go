// Package report renders aggregated figures as a styled terminal summary.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhruvm/spendwise/internal/analytics"
	"github.com/dhruvm/spendwise/internal/model"
)

var (
	colorAccent  lipgloss.Color = "#89b4fa"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"

	titleStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	overStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

// Data bundles everything the report prints. Currency arrives from config;
// nothing here reads ambient settings.
type Data struct {
	Currency  string
	Summary   analytics.MonthSummary
	Totals    []analytics.NameValue
	Trend     []analytics.TrendPoint
	Merchants []analytics.RankedEntry
	Budgets   []analytics.BudgetStatus
	Processed []model.ProcessedTransaction
}

// Render builds the full dashboard summary.
func Render(d Data) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("spendwise — monthly summary"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s%.2f   %s %s%.2f   %s %s%.2f\n",
		labelStyle.Render("income"), d.Currency, d.Summary.Income,
		labelStyle.Render("spent"), d.Currency, d.Summary.Expense,
		labelStyle.Render("net"), d.Currency, d.Summary.Net)

	b.WriteString(sectionStyle.Render("spending by category"))
	b.WriteString("\n")
	for _, nv := range d.Totals {
		fmt.Fprintf(&b, "  %-16s %s%.2f\n", nv.Name, d.Currency, nv.Value)
	}

	b.WriteString(sectionStyle.Render("top merchants"))
	b.WriteString("\n")
	for i, e := range d.Merchants {
		fmt.Fprintf(&b, "  %d. %-24s %s%.2f (%d txns)\n", i+1, e.Name, d.Currency, e.Total, e.Count)
	}

	b.WriteString(sectionStyle.Render("budgets"))
	b.WriteString("\n")
	for _, bs := range d.Budgets {
		state := okStyle.Render(fmt.Sprintf("%.0f%%", bs.Percentage))
		if bs.IsOverBudget {
			state = overStyle.Render(fmt.Sprintf("OVER by %s%.2f", d.Currency, -bs.Remaining))
		}
		fmt.Fprintf(&b, "  %-16s %s%.2f / %s%.2f  %s\n",
			bs.Budget.Category, d.Currency, bs.Spent, d.Currency, bs.Budget.Amount, state)
	}

	if n := len(d.Trend); n > 0 {
		b.WriteString(sectionStyle.Render("last days"))
		b.WriteString("\n")
		tail := d.Trend
		if n > 7 {
			tail = d.Trend[n-7:]
		}
		for _, p := range tail {
			fmt.Fprintf(&b, "  %s  in %s%.2f  out %s%.2f\n", p.Date, d.Currency, p.Income, d.Currency, p.Expense)
		}
	}

	return b.String()
}

// RenderTransactions lists projected transactions, newest first not assumed;
// the caller controls order. Aliased rows are marked.
func RenderTransactions(txs []model.ProcessedTransaction, currency string, limit int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("transactions"))
	b.WriteString("\n")
	for i, tx := range txs {
		if limit > 0 && i == limit {
			fmt.Fprintf(&b, "  %s\n", labelStyle.Render(fmt.Sprintf("… and %d more", len(txs)-limit)))
			break
		}
		alias := ""
		if tx.IsAliased {
			alias = labelStyle.Render(" (aliased)")
		}
		fmt.Fprintf(&b, "  %s %s  %-24s %-14s %s%.2f%s\n",
			tx.Date, tx.DisplayEmoji, tx.DisplayMerchant, tx.DisplayCategory, currency, tx.Amount, alias)
	}
	return b.String()
}
