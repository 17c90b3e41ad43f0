package stats

import (
	"context"

	"github.com/centsible/centsible/pkg/transaction"
)

type StatsService interface {
	// GetStats aggregates the current user's transactions within the window.
	GetStats(ctx context.Context, window transaction.Window) (Stats, error)
}

type StatsServiceImpl struct {
	transactionService transaction.Service
}

func NewStatsService(transactionService transaction.Service) *StatsServiceImpl {
	return &StatsServiceImpl{transactionService: transactionService}
}

func (s *StatsServiceImpl) GetStats(ctx context.Context, window transaction.Window) (Stats, error) {
	txs, err := s.transactionService.List(ctx, window)
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(txs), nil
}
