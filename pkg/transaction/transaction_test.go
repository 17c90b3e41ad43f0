package transaction

import (
	"testing"

	"github.com/centsible/centsible/pkg/money"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		Date:     "2025-03-14",
		Label:    "Groceries",
		Amount:   money.FromCents(4250),
		Type:     Expense,
		Category: Needs,
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid expense", func(tx *Transaction) {}, nil},
		{"valid income", func(tx *Transaction) { tx.Type = Income; tx.Category = Salary }, nil},
		{"empty label", func(tx *Transaction) { tx.Label = "" }, ErrEmptyLabel},
		{"whitespace label", func(tx *Transaction) { tx.Label = "   " }, ErrEmptyLabel},
		{"bad date format", func(tx *Transaction) { tx.Date = "14-03-2025" }, ErrInvalidDate},
		{"non-canonical date", func(tx *Transaction) { tx.Date = "2025-3-14" }, ErrInvalidDate},
		{"impossible date", func(tx *Transaction) { tx.Date = "2025-02-30" }, ErrInvalidDate},
		{"zero amount", func(tx *Transaction) { tx.Amount = money.FromCents(0) }, money.ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = money.FromCents(-100) }, money.ErrInvalidAmount},
		{"unknown type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransactionValidateLabelTooLong(t *testing.T) {
	tx := validTransaction()
	for len(tx.Label) <= 200 {
		tx.Label += "x"
	}
	assert.Error(t, tx.Validate())
}

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		valid  bool
	}{
		{"all", Window{Mode: WindowAll}, true},
		{"year", Window{Mode: WindowYear, Period: "2025"}, true},
		{"month", Window{Mode: WindowMonth, Period: "2025-03"}, true},
		{"year too short", Window{Mode: WindowYear, Period: "925"}, false},
		{"year not numeric", Window{Mode: WindowYear, Period: "20a5"}, false},
		{"month without dash", Window{Mode: WindowMonth, Period: "2025003"}, false},
		{"month too short", Window{Mode: WindowMonth, Period: "2025-3"}, false},
		{"unknown mode", Window{Mode: "quarter", Period: "2025-Q1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidWindow)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	txs := []Transaction{
		{ID: "a", Date: "2025-03-01", Label: "Rent", Amount: money.FromCents(90000), Type: Expense, Category: Needs},
		{ID: "b", Date: "2025-03-14", Label: "Cinema", Amount: money.FromCents(1500), Type: Expense, Category: Wants},
		{ID: "c", Date: "2025-04-01", Label: "Salary", Amount: money.FromCents(250000), Type: Income, Category: Salary},
		{ID: "d", Date: "2024-03-14", Label: "Old rent", Amount: money.FromCents(85000), Type: Expense, Category: Needs},
	}

	t.Run("all mode returns everything", func(t *testing.T) {
		got := Filter(txs, Window{Mode: WindowAll})
		assert.Equal(t, txs, got)
	})

	t.Run("month mode matches exact prefix", func(t *testing.T) {
		got := Filter(txs, Window{Mode: WindowMonth, Period: "2025-03"})
		assert.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("year mode includes all months of the year", func(t *testing.T) {
		got := Filter(txs, Window{Mode: WindowYear, Period: "2025"})
		assert.Len(t, got, 3)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		got := Filter(txs, Window{Mode: WindowMonth, Period: "2023-01"})
		assert.Empty(t, got)
	})

	t.Run("input is not mutated and order is preserved", func(t *testing.T) {
		before := make([]Transaction, len(txs))
		copy(before, txs)
		_ = Filter(txs, Window{Mode: WindowYear, Period: "2025"})
		assert.Equal(t, before, txs)
	})

	t.Run("filtering twice equals filtering once", func(t *testing.T) {
		w := Window{Mode: WindowMonth, Period: "2025-03"}
		once := Filter(txs, w)
		twice := Filter(once, w)
		assert.Equal(t, once, twice)
	})
}
