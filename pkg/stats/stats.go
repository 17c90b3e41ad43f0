package stats

import (
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
)

// Stats is the aggregate view of a set of transactions. Balance may be
// negative; everything else is a non-negative sum of positive amounts.
type Stats struct {
	TotalIncome        money.Money
	TotalExpenses      money.Money
	Balance            money.Money
	ExpensesByCategory map[transaction.Category]money.Money
}

// Aggregate folds the transactions left to right into totals. The breakdown
// always carries the three tracked buckets, initialized to zero, so callers
// can rely on their presence. Expenses with an untracked category count
// toward the expense total only.
func Aggregate(txs []transaction.Transaction) Stats {
	s := Stats{
		ExpensesByCategory: map[transaction.Category]money.Money{},
	}
	for _, c := range transaction.ExpenseCategories() {
		s.ExpensesByCategory[c] = money.Money{}
	}

	for _, tx := range txs {
		switch tx.Type {
		case transaction.Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case transaction.Expense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
			if tx.Category.IsTrackedExpense() {
				s.ExpensesByCategory[tx.Category] = s.ExpensesByCategory[tx.Category].Add(tx.Amount)
			}
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
