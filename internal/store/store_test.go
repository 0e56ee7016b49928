package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dhruvm/spendwise/internal/model"
)

func newTestStore() *Store {
	return New(zerolog.Nop())
}

func TestAddTransactionAssignsIDAndNormalizes(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	tx := s.AddTransaction(model.Transaction{
		Merchant: "Swiggy",
		Amount:   250,
		Category: model.Category("food"), // boundary spelling
		Type:     model.TransactionType("debit"),
		Date:     "2026-08-10",
	})

	require.NotEmpty(t, tx.ID)
	require.Equal(t, model.CategoryFood, tx.Category)
	require.Equal(t, model.TypeExpense, tx.Type)

	snap := s.Snapshot()
	require.Len(t, snap.Transactions, 1)
	require.Equal(t, tx, snap.Transactions[0])
}

func TestSnapshotIsolation(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	s.AddTransaction(model.Transaction{
		Merchant: "DMart",
		Amount:   1200,
		Category: model.CategoryGroceries,
		Type:     model.TypeExpense,
		Date:     "2026-08-10",
		Items:    []model.LineItem{{Name: "Milk 500ml", Price: 28, Quantity: 2}},
	})

	snap := s.Snapshot()
	snap.Transactions[0].Merchant = "mutated"
	snap.Transactions[0].Items[0].Name = "mutated"

	fresh := s.Snapshot()
	require.Equal(t, "DMart", fresh.Transactions[0].Merchant)
	require.Equal(t, "Milk 500ml", fresh.Transactions[0].Items[0].Name)
}

func TestSubscribeFiresImmediatelyAndOnChange(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	var calls []int
	s.Subscribe(func(snap Snapshot) {
		calls = append(calls, len(snap.Transactions))
	})
	require.Equal(t, []int{0}, calls)

	s.AddTransaction(model.Transaction{Merchant: "Uber", Amount: 150, Category: model.CategoryTransport, Type: model.TypeExpense, Date: "2026-08-10"})
	require.Equal(t, []int{0, 1}, calls)
}

func TestUpdateAndDeleteTransaction(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	tx := s.AddTransaction(model.Transaction{Merchant: "Uber", Amount: 150, Category: model.CategoryTransport, Type: model.TypeExpense, Date: "2026-08-10"})

	tx.Amount = 180
	require.NoError(t, s.UpdateTransaction(tx))
	require.Equal(t, 180.0, s.Snapshot().Transactions[0].Amount)

	require.Error(t, s.UpdateTransaction(model.Transaction{ID: "missing"}))

	require.NoError(t, s.DeleteTransaction(tx.ID))
	require.Empty(t, s.Snapshot().Transactions)
	require.Error(t, s.DeleteTransaction(tx.ID))
}

func TestAddRuleValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	_, err := s.AddRule(model.MerchantRule{OriginalName: "  ", RenamedTo: "x"})
	require.Error(t, err)

	r, err := s.AddRule(model.MerchantRule{OriginalName: "FastTag", RenamedTo: "FASTag"})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Len(t, s.Snapshot().Rules, 1)

	require.NoError(t, s.DeleteRule(r.ID))
	require.Error(t, s.DeleteRule(r.ID))
}

func TestRenameMerchantWithRule(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	tx := s.AddTransaction(model.Transaction{Merchant: "IDFC FastTag", Amount: 500, Category: model.CategoryTransport, Type: model.TypeExpense, Date: "2026-08-10"})

	rule, err := s.RenameMerchant(tx.ID, "FASTag", true)
	require.NoError(t, err)
	require.NotNil(t, rule)
	require.Equal(t, "IDFC FastTag", rule.OriginalName)
	require.Equal(t, "FASTag", rule.RenamedTo)

	snap := s.Snapshot()
	// raw record untouched; the rename lives in the rule
	require.Equal(t, "IDFC FastTag", snap.Transactions[0].Merchant)
	require.Len(t, snap.Rules, 1)
}

func TestRenameMerchantOneOffEdit(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	tx := s.AddTransaction(model.Transaction{Merchant: "IDFC FastTag", Amount: 500, Category: model.CategoryTransport, Type: model.TypeExpense, Date: "2026-08-10"})

	rule, err := s.RenameMerchant(tx.ID, "FASTag", false)
	require.NoError(t, err)
	require.Nil(t, rule)

	snap := s.Snapshot()
	require.Equal(t, "FASTag", snap.Transactions[0].Merchant)
	require.Empty(t, snap.Rules)

	_, err = s.RenameMerchant("missing", "x", false)
	require.Error(t, err)
	_, err = s.RenameMerchant(tx.ID, "  ", false)
	require.Error(t, err)
}

func TestBudgetsRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	b := s.AddBudget(model.Budget{Category: model.CategoryFood, Amount: 6000, Period: "fortnightly"})
	require.NotEmpty(t, b.ID)
	require.Equal(t, model.PeriodMonthly, b.Period) // unknown periods default to monthly

	require.NoError(t, s.DeleteBudget(b.ID))
	require.Error(t, s.DeleteBudget(b.ID))
}
