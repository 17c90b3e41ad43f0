package transaction

import (
	"context"
	"slices"
)

// StubRepo keeps transactions in memory, newest first, for tests.
type StubRepo struct {
	data map[int][]Transaction
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[int][]Transaction{}}
}

func (s *StubRepo) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	return slices.Clone(s.data[userId]), nil
}

func (s *StubRepo) Store(ctx context.Context, userId int, tx Transaction) error {
	s.data[userId] = append([]Transaction{tx}, s.data[userId]...)
	return nil
}

func (s *StubRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	txs := s.data[userId]
	for i, tx := range txs {
		if tx.ID == id {
			s.data[userId] = append(txs[:i], txs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepo) Cleanup() {
	s.data = map[int][]Transaction{}
}
