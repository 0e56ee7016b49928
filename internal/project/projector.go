// Package project derives the display view of transactions. Projection is a
// pure function of the current transactions and rules: it is recomputed in
// full whenever either changes and is never cached, so the display state can
// never drift from the underlying records.
package project

import (
	"github.com/dhruvm/spendwise/internal/lookup"
	"github.com/dhruvm/spendwise/internal/model"
	"github.com/dhruvm/spendwise/internal/rules"
)

// Project applies the best-matching rule (if any) and the lookup tables to a
// single transaction. It is total: every input yields a result, with unknown
// values degrading to defaults instead of failing.
func Project(tx model.Transaction, rs []model.MerchantRule) model.ProcessedTransaction {
	pt := model.ProcessedTransaction{Transaction: tx}

	if rule := rules.Match(tx.Merchant, rs); rule != nil {
		pt.DisplayMerchant = rule.RenamedTo
		pt.DisplayCategory = tx.Category
		if rule.ForcedCategory != nil {
			pt.DisplayCategory = *rule.ForcedCategory
		}
		pt.DisplaySubcategory = tx.Subcategory
		if rule.ForcedSubcategory != nil {
			pt.DisplaySubcategory = *rule.ForcedSubcategory
		}
		pt.DisplayEmoji = rule.Emoji
		if pt.DisplayEmoji == "" {
			pt.DisplayEmoji = lookup.MerchantEmoji(tx.Merchant)
		}
		pt.IsAliased = true
		return pt
	}

	pt.DisplayMerchant = tx.Merchant
	pt.DisplayCategory = tx.Category
	pt.DisplaySubcategory = tx.Subcategory
	pt.DisplayEmoji = tx.MerchantEmoji
	if pt.DisplayEmoji == "" {
		pt.DisplayEmoji = lookup.MerchantEmoji(tx.Merchant)
	}
	return pt
}

// ProjectAll projects every transaction against the same rule set. The cost
// is O(transactions x rules), which is fine at personal-finance volumes.
func ProjectAll(txs []model.Transaction, rs []model.MerchantRule) []model.ProcessedTransaction {
	out := make([]model.ProcessedTransaction, len(txs))
	for i, tx := range txs {
		out[i] = Project(tx, rs)
	}
	return out
}
