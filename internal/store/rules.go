package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dhruvm/spendwise/internal/model"
)

// AddRule stores a merchant rule, assigning an ID when missing, and returns
// the stored copy. Rules with an empty OriginalName are rejected.
func (s *Store) AddRule(r model.MerchantRule) (model.MerchantRule, error) {
	if strings.TrimSpace(r.OriginalName) == "" {
		return model.MerchantRule{}, fmt.Errorf("add rule: originalName is required")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ForcedCategory != nil {
		c := model.ParseCategory(string(*r.ForcedCategory))
		r.ForcedCategory = &c
	}

	s.mu.Lock()
	s.rules = append(s.rules, r)
	s.mu.Unlock()

	s.log.Debug().Str("id", r.ID).Str("pattern", r.OriginalName).Msg("rule added")
	s.notify()
	return r, nil
}

// DeleteRule removes a rule by ID.
func (s *Store) DeleteRule(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.rules {
		if s.rules[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete rule: %w", notFound("rule", id))
	}
	s.rules = append(s.rules[:idx], s.rules[idx+1:]...)
	s.mu.Unlock()

	s.notify()
	return nil
}

// RenameMerchant handles the rule-creation flow: the user renames the
// merchant on one transaction and optionally opts in to applying the rename
// everywhere. With saveRule set, the raw transaction is left untouched and a
// rule {OriginalName: current merchant, RenamedTo: newName} is created, so
// the rename takes effect through projection. Without it, this is a plain
// one-off edit of the single transaction.
func (s *Store) RenameMerchant(txID, newName string, saveRule bool) (*model.MerchantRule, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, fmt.Errorf("rename merchant: new name is required")
	}

	s.mu.Lock()
	i := s.txIndexLocked(txID)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("rename merchant: %w", notFound("transaction", txID))
	}

	if !saveRule {
		s.txs[i].Merchant = newName
		s.mu.Unlock()
		s.notify()
		return nil, nil
	}

	if strings.TrimSpace(s.txs[i].Merchant) == "" {
		s.mu.Unlock()
		return nil, fmt.Errorf("rename merchant: transaction %s has no merchant to alias", txID)
	}

	rule := model.MerchantRule{
		ID:           uuid.NewString(),
		OriginalName: s.txs[i].Merchant,
		RenamedTo:    newName,
	}
	s.rules = append(s.rules, rule)
	s.mu.Unlock()

	s.log.Debug().Str("from", rule.OriginalName).Str("to", rule.RenamedTo).Msg("merchant rule created from rename")
	s.notify()
	return &rule, nil
}

// AddBudget stores a budget, assigning an ID when missing.
func (s *Store) AddBudget(b model.Budget) model.Budget {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Category = model.ParseCategory(string(b.Category))
	if b.Period != model.PeriodWeekly {
		b.Period = model.PeriodMonthly
	}

	s.mu.Lock()
	s.budgets = append(s.budgets, b)
	s.mu.Unlock()

	s.notify()
	return b
}

// DeleteBudget removes a budget by ID.
func (s *Store) DeleteBudget(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete budget: %w", notFound("budget", id))
	}
	s.budgets = append(s.budgets[:idx], s.budgets[idx+1:]...)
	s.mu.Unlock()

	s.notify()
	return nil
}
