package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhruvm/spendwise/internal/lookup"
	"github.com/dhruvm/spendwise/internal/model"
)

func sampleTx() model.Transaction {
	return model.Transaction{
		ID:       "t1",
		Merchant: "IDFC FastTag",
		Amount:   500,
		Category: model.CategoryBanking,
		Type:     model.TypeExpense,
		Date:     "2026-08-10",
	}
}

func TestProjectNoRulesPassThrough(t *testing.T) {
	t.Parallel()
	tx := sampleTx()
	pt := Project(tx, nil)

	require.Equal(t, tx.Merchant, pt.DisplayMerchant)
	require.Equal(t, tx.Category, pt.DisplayCategory)
	require.Equal(t, "", pt.DisplaySubcategory)
	require.False(t, pt.IsAliased)
}

func TestProjectAppliesRule(t *testing.T) {
	t.Parallel()
	transport := model.CategoryTransport
	rs := []model.MerchantRule{{
		ID:             "r1",
		OriginalName:   "FastTag",
		RenamedTo:      "FASTag",
		ForcedCategory: &transport,
	}}

	pt := Project(sampleTx(), rs)
	require.Equal(t, "FASTag", pt.DisplayMerchant)
	require.Equal(t, model.CategoryTransport, pt.DisplayCategory)
	require.True(t, pt.IsAliased)
}

func TestProjectForcedSubcategoryFallback(t *testing.T) {
	t.Parallel()
	tolls := "Tolls"
	tx := sampleTx()
	tx.Subcategory = "Highway"

	with := Project(tx, []model.MerchantRule{{OriginalName: "FastTag", RenamedTo: "FASTag", ForcedSubcategory: &tolls}})
	require.Equal(t, "Tolls", with.DisplaySubcategory)

	without := Project(tx, []model.MerchantRule{{OriginalName: "FastTag", RenamedTo: "FASTag"}})
	require.Equal(t, "Highway", without.DisplaySubcategory)
}

func TestProjectEmojiChain(t *testing.T) {
	t.Parallel()

	// rule emoji wins
	pt := Project(sampleTx(), []model.MerchantRule{{OriginalName: "FastTag", RenamedTo: "FASTag", Emoji: "🚗"}})
	require.Equal(t, "🚗", pt.DisplayEmoji)

	// no rule emoji: lookup on the raw merchant
	pt = Project(sampleTx(), []model.MerchantRule{{OriginalName: "FastTag", RenamedTo: "FASTag"}})
	require.Equal(t, lookup.MerchantEmoji("IDFC FastTag"), pt.DisplayEmoji)

	// unmatched: stored emoji wins over lookup
	tx := sampleTx()
	tx.MerchantEmoji = "💳"
	pt = Project(tx, nil)
	require.Equal(t, "💳", pt.DisplayEmoji)

	// nothing anywhere: default document emoji
	pt = Project(model.Transaction{Merchant: "Random Unknown Shop", Category: model.CategoryOther, Type: model.TypeExpense}, nil)
	require.Equal(t, lookup.DefaultEmoji, pt.DisplayEmoji)
}

func TestProjectIdempotent(t *testing.T) {
	t.Parallel()
	tx := sampleTx()
	tx.Items = []model.LineItem{{Name: "Toll", Price: 500, Quantity: 1}}
	rs := []model.MerchantRule{{OriginalName: "FastTag", RenamedTo: "FASTag"}}

	require.Equal(t, Project(tx, rs), Project(tx, rs))
}

func TestProjectAll(t *testing.T) {
	t.Parallel()
	txs := []model.Transaction{
		sampleTx(),
		{ID: "t2", Merchant: "Swiggy", Category: model.CategoryFood, Type: model.TypeExpense, Date: "2026-08-11"},
	}
	rs := []model.MerchantRule{{OriginalName: "FastTag", RenamedTo: "FASTag"}}

	out := ProjectAll(txs, rs)
	require.Len(t, out, 2)
	require.True(t, out[0].IsAliased)
	require.False(t, out[1].IsAliased)

	require.Empty(t, ProjectAll(nil, rs))
}
