package stats

import (
	"bytes"
	"fmt"

	"github.com/centsible/centsible/pkg/transaction"
	"github.com/xuri/excelize/v2"
)

type XlsxStatsRenderer struct {
}

func NewXlsxStatsRenderer() *XlsxStatsRenderer {
	return &XlsxStatsRenderer{}
}

// RenderStats produces a single-sheet workbook with the totals followed by
// the per-category breakdown. Amounts are written as numbers in currency
// units so spreadsheet formulas work on them.
func (r *XlsxStatsRenderer) RenderStats(stats Stats) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := []struct {
		label string
		value float64
	}{
		{"Total income", stats.TotalIncome.Units()},
		{"Total expenses", stats.TotalExpenses.Units()},
		{"Balance", stats.Balance.Units()},
	}
	for _, category := range transaction.ExpenseCategories() {
		rows = append(rows, struct {
			label string
			value float64
		}{string(category), stats.ExpensesByCategory[category].Units()})
	}

	if err := f.SetCellValue(sheet, "A1", ""); err != nil {
		return nil, fmt.Errorf("failed to write workbook header: %w", err)
	}
	if err := f.SetCellValue(sheet, "B1", "Amount"); err != nil {
		return nil, fmt.Errorf("failed to write workbook header: %w", err)
	}
	for i, row := range rows {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.label); err != nil {
			return nil, fmt.Errorf("failed to write workbook row: %w", err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.value); err != nil {
			return nil, fmt.Errorf("failed to write workbook row: %w", err)
		}
	}

	var b bytes.Buffer
	if err := f.Write(&b); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return b.Bytes(), nil
}
