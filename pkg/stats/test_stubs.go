package stats

import (
	"context"

	"github.com/centsible/centsible/pkg/transaction"
)

// StubTransactionService serves a fixed transaction list, applying the same
// window filtering as the real service.
type StubTransactionService struct {
	Transactions []transaction.Transaction
}

func (s *StubTransactionService) List(ctx context.Context, w transaction.Window) ([]transaction.Transaction, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return transaction.Filter(s.Transactions, w), nil
}

func (s *StubTransactionService) Create(ctx context.Context, tx transaction.Transaction) (transaction.Transaction, error) {
	s.Transactions = append([]transaction.Transaction{tx}, s.Transactions...)
	return tx, nil
}

func (s *StubTransactionService) Delete(ctx context.Context, id string) error {
	for i, tx := range s.Transactions {
		if tx.ID == id {
			s.Transactions = append(s.Transactions[:i], s.Transactions[i+1:]...)
			return nil
		}
	}
	return transaction.ErrNotFound
}
