package stats

import (
	"context"
	"testing"

	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsAppliesWindow(t *testing.T) {
	stub := &StubTransactionService{Transactions: []transaction.Transaction{
		{ID: "a", Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(100000), Type: transaction.Income, Category: transaction.Salary},
		{ID: "b", Date: "2025-03-05", Label: "Rent", Amount: money.FromCents(40000), Type: transaction.Expense, Category: transaction.Needs},
		{ID: "c", Date: "2025-04-05", Label: "April rent", Amount: money.FromCents(40000), Type: transaction.Expense, Category: transaction.Needs},
	}}
	service := NewStatsService(stub)

	stats, err := service.GetStats(context.Background(), transaction.Window{Mode: transaction.WindowMonth, Period: "2025-03"})
	require.NoError(t, err)

	assert.Equal(t, int64(100000), stats.TotalIncome.Cents)
	assert.Equal(t, int64(40000), stats.TotalExpenses.Cents)
	assert.Equal(t, int64(60000), stats.Balance.Cents)
}

func TestGetStatsInvalidWindow(t *testing.T) {
	service := NewStatsService(&StubTransactionService{})

	_, err := service.GetStats(context.Background(), transaction.Window{Mode: "decade", Period: "2020"})
	assert.ErrorIs(t, err, transaction.ErrInvalidWindow)
}
