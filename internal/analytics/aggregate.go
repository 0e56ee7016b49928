// Package analytics contains pure reducers over processed transactions.
// Every function recomputes from scratch on each call; there is no
// incremental state to maintain or invalidate.
package analytics

import (
	"sort"

	"github.com/dhruvm/spendwise/internal/model"
)

// NameValue is one labelled total, e.g. a category slice of a pie chart.
type NameValue struct {
	Name  string
	Value float64
}

// CategoryTotals sums expense amounts by display category. Categories appear
// in first-seen order; income transactions are excluded.
func CategoryTotals(txs []model.ProcessedTransaction) []NameValue {
	index := make(map[model.Category]int)
	var out []NameValue
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		i, ok := index[tx.DisplayCategory]
		if !ok {
			i = len(out)
			index[tx.DisplayCategory] = i
			out = append(out, NameValue{Name: string(tx.DisplayCategory)})
		}
		out[i].Value += tx.Amount
	}
	return out
}

// TrendPoint is one day of the income/expense series.
type TrendPoint struct {
	Date    string
	Income  float64
	Expense float64
}

// Trend groups transactions by date and sums income and expense separately,
// returning the series in ascending date order. ISO dates sort
// lexicographically, so no parsing is needed.
func Trend(txs []model.ProcessedTransaction) []TrendPoint {
	index := make(map[string]int)
	var out []TrendPoint
	for _, tx := range txs {
		i, ok := index[tx.Date]
		if !ok {
			i = len(out)
			index[tx.Date] = i
			out = append(out, TrendPoint{Date: tx.Date})
		}
		switch tx.Type {
		case model.TypeIncome:
			out[i].Income += tx.Amount
		default:
			out[i].Expense += tx.Amount
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date < out[b].Date })
	return out
}

// RankedEntry is one row of a top-N ranking.
type RankedEntry struct {
	Name  string
	Total float64
	Count int
}

// TopMerchants ranks display merchants by summed expense amount, descending,
// truncated to n. Ties keep first-seen order (stable sort).
func TopMerchants(txs []model.ProcessedTransaction, n int) []RankedEntry {
	index := make(map[string]int)
	var entries []RankedEntry
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		i, ok := index[tx.DisplayMerchant]
		if !ok {
			i = len(entries)
			index[tx.DisplayMerchant] = i
			entries = append(entries, RankedEntry{Name: tx.DisplayMerchant})
		}
		entries[i].Total += tx.Amount
		entries[i].Count++
	}
	return rankDescending(entries, n)
}

// TopItems ranks receipt line items by summed spend, descending, truncated
// to n. A missing quantity counts as one.
func TopItems(txs []model.ProcessedTransaction, n int) []RankedEntry {
	index := make(map[string]int)
	var entries []RankedEntry
	for _, tx := range txs {
		for _, item := range tx.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			i, ok := index[item.Name]
			if !ok {
				i = len(entries)
				index[item.Name] = i
				entries = append(entries, RankedEntry{Name: item.Name})
			}
			entries[i].Total += item.Price * qty
			entries[i].Count++
		}
	}
	return rankDescending(entries, n)
}

func rankDescending(entries []RankedEntry, n int) []RankedEntry {
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].Total > entries[b].Total })
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
