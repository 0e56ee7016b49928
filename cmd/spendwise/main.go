package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dhruvm/spendwise/internal/analytics"
	"github.com/dhruvm/spendwise/internal/config"
	"github.com/dhruvm/spendwise/internal/dedup"
	"github.com/dhruvm/spendwise/internal/logger"
	"github.com/dhruvm/spendwise/internal/project"
	"github.com/dhruvm/spendwise/internal/report"
	"github.com/dhruvm/spendwise/internal/seed"
	"github.com/dhruvm/spendwise/internal/store"
	"github.com/dhruvm/spendwise/internal/suggest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level)

	now := time.Now()
	st := store.New(log)

	// Recompute the projection and aggregates on every store change. The
	// callback fires once immediately with the current (empty) snapshot.
	var latest report.Data
	st.Subscribe(func(snap store.Snapshot) {
		processed := project.ProjectAll(snap.Transactions, snap.Rules)
		latest = report.Data{
			Currency:  cfg.UI.CurrencySymbol,
			Summary:   analytics.SummarizeMonth(processed, cfg.UI.CurrencySymbol, now),
			Totals:    analytics.CategoryTotals(processed),
			Trend:     analytics.Trend(processed),
			Merchants: analytics.TopMerchants(processed, 5),
			Processed: processed,
		}
		for _, b := range snap.Budgets {
			latest.Budgets = append(latest.Budgets, analytics.ComputeBudgetStatus(b, processed, now))
		}
		log.Debug().
			Int("transactions", len(snap.Transactions)).
			Int("rules", len(snap.Rules)).
			Msg("projection recomputed")
	})

	rng := rand.New(rand.NewSource(now.UnixNano()))
	seed.Populate(st, rng, cfg.Seed.Count, now)
	log.Info().Int("count", cfg.Seed.Count).Msg("seeded sample data")

	if pairs := dedup.FindCandidates(st.Snapshot().Transactions); len(pairs) > 0 {
		for _, p := range pairs {
			log.Info().
				Str("a", p.A.ID).
				Str("b", p.B.ID).
				Float64("similarity", p.Similarity).
				Msg("possible duplicate")
		}
	}

	fmt.Println(report.Render(latest))
	fmt.Println(report.RenderTransactions(latest.Processed, cfg.UI.CurrencySymbol, 10))

	for _, s := range suggest.SuggestN("electricity bill", cfg.Suggest.Limit) {
		log.Info().
			Str("subcategory", s.Subcategory).
			Str("category", string(s.Category)).
			Float64("confidence", s.Confidence).
			Msg("suggestion for 'electricity bill'")
	}
}
