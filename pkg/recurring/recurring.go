package recurring

import (
	"errors"
	"strings"

	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
)

type Frequency string

const (
	Monthly Frequency = "monthly"
)

var (
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidDuration  = errors.New("duration months must not be negative")
	ErrNotFound         = errors.New("recurring item not found")
)

// RecurringItem is a template that periodically generates transactions.
// lastGenerated tracks the date of the most recent materialized occurrence;
// it is empty before the first generation and only ever moves forward.
type RecurringItem struct {
	ID             string
	Label          string
	Amount         money.Money
	Type           transaction.Type
	Category       transaction.Category
	Frequency      Frequency
	StartDate      string // ISO YYYY-MM-DD of the first occurrence
	DurationMonths int    // 0 = unlimited, N > 0 = exactly N occurrences
	LastGenerated  string // ISO date, empty before the first generation
}

func (item RecurringItem) Validate() error {
	if err := transaction.ValidateDate(item.StartDate); err != nil {
		return err
	}
	if len(strings.TrimSpace(item.Label)) == 0 {
		return transaction.ErrEmptyLabel
	}
	if err := item.Amount.Validate(); err != nil {
		return err
	}
	switch item.Type {
	case transaction.Income, transaction.Expense:
	default:
		return transaction.ErrInvalidType
	}
	if item.Frequency != Monthly {
		return ErrInvalidFrequency
	}
	if item.DurationMonths < 0 {
		return ErrInvalidDuration
	}
	if item.LastGenerated != "" {
		if err := transaction.ValidateDate(item.LastGenerated); err != nil {
			return err
		}
	}
	return nil
}
