// Package store is the in-memory live store behind the projection pipeline.
// It owns the raw transactions, merchant rules and budgets, hands out
// defensive copies, and notifies subscribers after every mutation so the UI
// layer can recompute its projections. Nothing here touches disk; durable
// persistence is a separate collaborator.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dhruvm/spendwise/internal/model"
)

// Snapshot is a point-in-time copy of the store contents. Mutating a
// snapshot never affects the store.
type Snapshot struct {
	Transactions []model.Transaction
	Rules        []model.MerchantRule
	Budgets      []model.Budget
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	txs     []model.Transaction
	rules   []model.MerchantRule
	budgets []model.Budget
	subs    []func(Snapshot)
	log     zerolog.Logger
}

// New creates an empty store.
func New(log zerolog.Logger) *Store {
	return &Store{log: log}
}

// Subscribe registers a callback invoked with a fresh snapshot immediately
// and after every subsequent mutation. Callbacks run synchronously on the
// mutating goroutine.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	fn(snap)
}

// Snapshot returns a copy of the current contents.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Transactions: make([]model.Transaction, len(s.txs)),
		Rules:        make([]model.MerchantRule, len(s.rules)),
		Budgets:      make([]model.Budget, len(s.budgets)),
	}
	for i, tx := range s.txs {
		snap.Transactions[i] = copyTransaction(tx)
	}
	copy(snap.Rules, s.rules)
	copy(snap.Budgets, s.budgets)
	return snap
}

func copyTransaction(tx model.Transaction) model.Transaction {
	if len(tx.Items) > 0 {
		items := make([]model.LineItem, len(tx.Items))
		copy(items, tx.Items)
		tx.Items = items
	}
	return tx
}

// notify snapshots under the lock, then runs callbacks without it.
func (s *Store) notify() {
	s.mu.RLock()
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// AddTransaction normalizes and stores a transaction, assigning an ID when
// missing, and returns the stored copy. Category strings from external
// boundaries collapse to Other here.
func (s *Store) AddTransaction(tx model.Transaction) model.Transaction {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.Category = model.ParseCategory(string(tx.Category))
	tx.Type = model.ParseTransactionType(string(tx.Type))

	s.mu.Lock()
	s.txs = append(s.txs, copyTransaction(tx))
	s.mu.Unlock()

	s.log.Debug().Str("id", tx.ID).Str("merchant", tx.Merchant).Msg("transaction added")
	s.notify()
	return tx
}

// UpdateTransaction replaces a transaction by ID.
func (s *Store) UpdateTransaction(tx model.Transaction) error {
	tx.Category = model.ParseCategory(string(tx.Category))
	tx.Type = model.ParseTransactionType(string(tx.Type))

	s.mu.Lock()
	i := s.txIndexLocked(tx.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("update transaction: %w", notFound("transaction", tx.ID))
	}
	s.txs[i] = copyTransaction(tx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	i := s.txIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete transaction: %w", notFound("transaction", id))
	}
	s.txs = append(s.txs[:i], s.txs[i+1:]...)
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *Store) txIndexLocked(id string) int {
	for i := range s.txs {
		if s.txs[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s not found: %s", kind, id)
}
