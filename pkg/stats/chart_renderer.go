package stats

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/centsible/centsible/pkg/transaction"
	"github.com/wcharczuk/go-chart/v2"
)

var ErrNoExpenses = errors.New("no categorized expenses to chart")

type ChartRenderer struct {
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

// RenderCategoryPie draws a PNG pie chart of the expense breakdown.
// Returns ErrNoExpenses when every tracked bucket is zero, since a pie of
// nothing cannot be rendered.
func (r *ChartRenderer) RenderCategoryPie(stats Stats) ([]byte, error) {
	values := make([]chart.Value, 0, 3)
	for _, category := range transaction.ExpenseCategories() {
		amount := stats.ExpensesByCategory[category]
		if amount.IsZero() {
			continue
		}
		values = append(values, chart.Value{
			Value: amount.Units(),
			Label: fmt.Sprintf("%s (%s)", category, amount.String()),
		})
	}
	if len(values) == 0 {
		return nil, ErrNoExpenses
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buffer.Bytes(), nil
}
