package transaction

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/centsible/centsible/pkg/money"
)

type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// Category is a budgeting bucket. Only expenses participate in the category
// breakdown; for income records the category is stored but cosmetic.
type Category string

const (
	Needs   Category = "needs"
	Wants   Category = "wants"
	Savings Category = "savings"
	Salary  Category = "salary"
)

// ExpenseCategories returns the tracked expense buckets in their fixed
// presentation order.
func ExpenseCategories() []Category {
	return []Category{Needs, Wants, Savings}
}

// IsTrackedExpense reports whether the category is one of the three buckets
// counted in the per-category breakdown. Anything else (including salary and
// free-form strings) is tolerated but only contributes to the expense total.
func (c Category) IsTrackedExpense() bool {
	return c == Needs || c == Wants || c == Savings
}

var (
	ErrEmptyLabel  = errors.New("empty label")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidType = errors.New("invalid transaction type")
	ErrNotFound    = errors.New("transaction not found")
)

// Transaction is a single recorded income or expense event. Records are
// append/delete only; corrections are delete and recreate.
type Transaction struct {
	ID       string
	Date     string // ISO YYYY-MM-DD, kept lexical so window filtering stays exact
	Label    string
	Amount   money.Money
	Type     Type
	Category Category
}

func (t Transaction) Validate() error {
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Label)) == 0 {
		return ErrEmptyLabel
	}
	if len(t.Label) > 200 {
		return errors.New("label too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	switch t.Type {
	case Income, Expense:
	default:
		return ErrInvalidType
	}
	return nil
}

// ValidateDate checks that s is a calendar date in canonical ISO form.
// A parse roundtrip rejects shapes like "2025-3-01" that time.Parse accepts
// only loosely elsewhere.
func ValidateDate(s string) error {
	d, err := time.Parse("2006-01-02", s)
	if err != nil || d.Format("2006-01-02") != s {
		return ErrInvalidDate
	}
	return nil
}

type WindowMode string

const (
	WindowAll   WindowMode = "all"
	WindowYear  WindowMode = "year"
	WindowMonth WindowMode = "month"
)

// Window selects the reporting period. Period is "2025" for year mode and
// "2025-03" for month mode; it is ignored in all mode.
type Window struct {
	Mode   WindowMode
	Period string
}

var ErrInvalidWindow = errors.New("invalid window")

func (w Window) Validate() error {
	switch w.Mode {
	case WindowAll:
		return nil
	case WindowYear:
		if len(w.Period) != 4 || !allDigits(w.Period) {
			return ErrInvalidWindow
		}
		return nil
	case WindowMonth:
		if len(w.Period) != 7 || w.Period[4] != '-' ||
			!allDigits(w.Period[:4]) || !allDigits(w.Period[5:]) {
			return ErrInvalidWindow
		}
		return nil
	default:
		return ErrInvalidWindow
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Filter returns the transactions whose date falls into the window. Matching
// is an exact string prefix on the ISO date: callers rely on the lexical form
// of the date field, so no calendar-range arithmetic happens here. The input
// is never mutated and order is preserved.
func Filter(txs []Transaction, w Window) []Transaction {
	if w.Mode == WindowAll {
		return slices.Clone(txs)
	}
	prefix := w.Period
	filtered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if strings.HasPrefix(tx.Date, prefix) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
