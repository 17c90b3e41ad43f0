package stats

import (
	"testing"

	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Salary", Amount: money.FromCents(100000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Rent", Amount: money.FromCents(40000), Type: transaction.Expense, Category: transaction.Needs},
		{Date: "2025-03-10", Label: "Dining", Amount: money.FromCents(40000), Type: transaction.Expense, Category: transaction.Wants},
		{Date: "2025-03-15", Label: "ETF", Amount: money.FromCents(10000), Type: transaction.Expense, Category: transaction.Savings},
	}

	stats := Aggregate(txs)

	assert.Equal(t, int64(100000), stats.TotalIncome.Cents)
	assert.Equal(t, int64(90000), stats.TotalExpenses.Cents)
	assert.Equal(t, int64(10000), stats.Balance.Cents)
	assert.Equal(t, int64(40000), stats.ExpensesByCategory[transaction.Needs].Cents)
	assert.Equal(t, int64(40000), stats.ExpensesByCategory[transaction.Wants].Cents)
	assert.Equal(t, int64(10000), stats.ExpensesByCategory[transaction.Savings].Cents)
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil)

	assert.True(t, stats.TotalIncome.IsZero())
	assert.True(t, stats.TotalExpenses.IsZero())
	assert.True(t, stats.Balance.IsZero())
	// The three buckets are always present
	assert.Len(t, stats.ExpensesByCategory, 3)
	for _, c := range transaction.ExpenseCategories() {
		assert.True(t, stats.ExpensesByCategory[c].IsZero())
	}
}

func TestAggregateNegativeBalance(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Side gig", Amount: money.FromCents(5000), Type: transaction.Income, Category: transaction.Salary},
		{Date: "2025-03-02", Label: "Repair", Amount: money.FromCents(8000), Type: transaction.Expense, Category: transaction.Needs},
	}

	stats := Aggregate(txs)

	assert.Equal(t, int64(-3000), stats.Balance.Cents)
}

func TestAggregateUnknownExpenseCategory(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Mystery", Amount: money.FromCents(1234), Type: transaction.Expense, Category: "misc"},
	}

	stats := Aggregate(txs)

	assert.Equal(t, int64(1234), stats.TotalExpenses.Cents)
	for _, c := range transaction.ExpenseCategories() {
		assert.True(t, stats.ExpensesByCategory[c].IsZero())
	}
	// Untracked categories never join the breakdown
	assert.Len(t, stats.ExpensesByCategory, 3)
}

func TestAggregateIncomeCategoryIgnored(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: "2025-03-01", Label: "Refund", Amount: money.FromCents(2000), Type: transaction.Income, Category: transaction.Needs},
	}

	stats := Aggregate(txs)

	assert.Equal(t, int64(2000), stats.TotalIncome.Cents)
	assert.True(t, stats.ExpensesByCategory[transaction.Needs].IsZero())
}
