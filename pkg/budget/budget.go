package budget

import (
	"math"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/stats"
	"github.com/centsible/centsible/pkg/transaction"
)

// Targets holds the per-category income fractions of the budgeting rule
// (0.50/0.30/0.20 by default). Fractions always sum to 1, enforced by
// config validation on the percentage form.
type Targets struct {
	Needs   float64
	Wants   float64
	Savings float64
}

func TargetsFromConfig(cfg config.Budget) Targets {
	return Targets{
		Needs:   float64(cfg.NeedsPercent) / 100,
		Wants:   float64(cfg.WantsPercent) / 100,
		Savings: float64(cfg.SavingsPercent) / 100,
	}
}

func (t Targets) Fraction(category transaction.Category) float64 {
	switch category {
	case transaction.Needs:
		return t.Needs
	case transaction.Wants:
		return t.Wants
	case transaction.Savings:
		return t.Savings
	default:
		return 0
	}
}

// BudgetCategory is the evaluated state of one bucket against its target.
// Derived on demand, never persisted.
type BudgetCategory struct {
	Name         transaction.Category
	Color        string
	Target       float64
	Value        money.Money
	TargetAmount money.Money
	Percent      float64
	IsOver       bool
	OverAmount   money.Money
}

// Presentation hints for the three buckets, in their fixed order.
var categoryColors = map[transaction.Category]string{
	transaction.Needs:   "#4CAF50",
	transaction.Wants:   "#FF9800",
	transaction.Savings: "#2196F3",
}

// Evaluate compares the spending breakdown against the targets. Categories
// come back in the fixed needs/wants/savings order. With zero income every
// derived number is zero; nothing divides by the income.
func Evaluate(s stats.Stats, targets Targets) []BudgetCategory {
	categories := make([]BudgetCategory, 0, 3)
	income := s.TotalIncome

	for _, name := range transaction.ExpenseCategories() {
		fraction := targets.Fraction(name)
		value := s.ExpensesByCategory[name]
		category := BudgetCategory{
			Name:   name,
			Color:  categoryColors[name],
			Target: fraction,
			Value:  value,
		}
		if income.IsPositive() {
			targetAmount := money.FromCents(int64(math.Round(float64(income.Cents) * fraction)))
			category.TargetAmount = targetAmount
			category.Percent = float64(value.Cents) / float64(income.Cents) * 100
			if value.Cents > targetAmount.Cents {
				category.IsOver = true
				category.OverAmount = value.Sub(targetAmount)
			}
		}
		categories = append(categories, category)
	}
	return categories
}
