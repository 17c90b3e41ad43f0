package recurring

import (
	"time"

	"github.com/centsible/centsible/pkg/transaction"
)

// The projector is pure: given an item and an explicit as-of date it derives
// the occurrences that are due but not yet materialized. It never reads the
// system clock and never mutates the item; persisting the advanced
// lastGenerated before the next call is the caller's idempotency obligation.

// PendingCount previews how many occurrences Materialize would produce.
func PendingCount(item RecurringItem, asOf time.Time) int {
	return len(dueOccurrences(item, asOf))
}

// Materialize produces one transaction per due monthly period, oldest first.
// Each carries the item's label, amount, type, and category; the date is the
// start date's day-of-month clamped to the target month. IDs are left empty
// for the store to assign.
func Materialize(item RecurringItem, asOf time.Time) []transaction.Transaction {
	dates := dueOccurrences(item, asOf)
	txs := make([]transaction.Transaction, 0, len(dates))
	for _, date := range dates {
		txs = append(txs, transaction.Transaction{
			Date:     date,
			Label:    item.Label,
			Amount:   item.Amount,
			Type:     item.Type,
			Category: item.Category,
		})
	}
	return txs
}

func dueOccurrences(item RecurringItem, asOf time.Time) []string {
	start, err := time.Parse("2006-01-02", item.StartDate)
	if err != nil {
		return nil
	}

	startIdx := monthIndex(start)
	nextIdx := startIdx
	if item.LastGenerated != "" {
		last, err := time.Parse("2006-01-02", item.LastGenerated)
		if err != nil {
			return nil
		}
		nextIdx = monthIndex(last) + 1
	}

	// Occurrences already produced count against the lifetime cap.
	remaining := -1
	if item.DurationMonths > 0 {
		remaining = item.DurationMonths - (nextIdx - startIdx)
		if remaining <= 0 {
			return nil
		}
	}

	var dates []string
	for idx := nextIdx; remaining != 0; idx++ {
		date := occurrenceDate(idx, start.Day())
		if date.After(asOf) {
			break
		}
		dates = append(dates, date.Format("2006-01-02"))
		if remaining > 0 {
			remaining--
		}
	}
	return dates
}

// monthIndex flattens a date to a linear month counter so period arithmetic
// is plain integer math.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// occurrenceDate places the occurrence on the given day of the indexed
// month, clamped to the month's length (a start on the 31st falls on
// Feb 28/29).
func occurrenceDate(idx int, day int) time.Time {
	year := idx / 12
	month := time.Month(idx%12 + 1)
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
