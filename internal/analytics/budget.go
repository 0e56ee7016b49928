package analytics

import (
	"time"

	"github.com/dhruvm/spendwise/internal/model"
)

const isoDate = "2006-01-02"

// BudgetStatus reports how far through a budget's allowance the current
// period has progressed.
type BudgetStatus struct {
	Budget       model.Budget
	PeriodStart  time.Time
	Spent        float64
	Remaining    float64
	Percentage   float64
	IsOverBudget bool
}

// PeriodStart computes the start of the budget window containing now.
// Monthly budgets reset on the 1st of the current month; weekly budgets
// reset on the most recent Sunday.
func PeriodStart(period model.BudgetPeriod, now time.Time) time.Time {
	switch period {
	case model.PeriodWeekly:
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return day.AddDate(0, 0, -int(day.Weekday()))
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// ComputeBudgetStatus sums expenses in the budget's category between the
// period start and now. Percentage is capped at 100 even when over budget.
// A zero budget amount is the caller's problem; the division is not guarded.
func ComputeBudgetStatus(b model.Budget, txs []model.ProcessedTransaction, now time.Time) BudgetStatus {
	start := PeriodStart(b.Period, now)
	var spent float64
	for _, tx := range txs {
		if tx.Type != model.TypeExpense || tx.DisplayCategory != b.Category {
			continue
		}
		d, err := time.ParseInLocation(isoDate, tx.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(now) {
			continue
		}
		spent += tx.Amount
	}

	pct := spent / b.Amount * 100
	if pct > 100 {
		pct = 100
	}
	return BudgetStatus{
		Budget:       b,
		PeriodStart:  start,
		Spent:        spent,
		Remaining:    b.Amount - spent,
		Percentage:   pct,
		IsOverBudget: spent > b.Amount,
	}
}

// MonthSummary is a labelled roll-up of the current calendar month. Currency
// is carried explicitly from configuration; nothing in this package reads
// ambient settings.
type MonthSummary struct {
	Currency string
	Income   float64
	Expense  float64
	Net      float64
}

// SummarizeMonth totals income and expense for the month containing now.
func SummarizeMonth(txs []model.ProcessedTransaction, currency string, now time.Time) MonthSummary {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	s := MonthSummary{Currency: currency}
	for _, tx := range txs {
		d, err := time.ParseInLocation(isoDate, tx.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(now) {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			s.Income += tx.Amount
		default:
			s.Expense += tx.Amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}
