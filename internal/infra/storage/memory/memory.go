// Package memory keeps balance records and the transaction log in process
// memory. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gabapcia/tokensend/internal/sendflow"
)

type Store struct {
	mu           sync.RWMutex
	balances     map[string]sendflow.BalanceRecord
	transactions []sendflow.TransactionRecord
}

func New() *Store {
	return &Store{
		balances: make(map[string]sendflow.BalanceRecord),
	}
}

func (s *Store) SetBalance(_ context.Context, record sendflow.BalanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[record.Alias] = record
	return nil
}

func (s *Store) Balance(_ context.Context, alias string) (sendflow.BalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.balances[alias]
	if !ok {
		return sendflow.BalanceRecord{}, sendflow.ErrRecordNotFound
	}
	return record, nil
}

func (s *Store) AppendTransaction(_ context.Context, record sendflow.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, record)
	return nil
}

// ListTransactions returns a copy of the log in append order.
func (s *Store) ListTransactions(context.Context) ([]sendflow.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.transactions), nil
}

func (s *Store) Close() error { return nil }

var (
	_ sendflow.BalanceStore   = (*Store)(nil)
	_ sendflow.TransactionLog = (*Store)(nil)
)
