package stats

import (
	"bytes"
	"encoding/csv"

	"github.com/centsible/centsible/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

func (t *CsvStatsRendererImpl) RenderStats(stats Stats) (string, error) {
	data := [][]string{
		{"", "Amount"},
		{"Total income", stats.TotalIncome.String()},
		{"Total expenses", stats.TotalExpenses.String()},
		{"Balance", stats.Balance.String()},
	}
	for _, category := range transaction.ExpenseCategories() {
		data = append(data, []string{string(category), stats.ExpensesByCategory[category].String()})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
