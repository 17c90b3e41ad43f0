package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/centsible/centsible/pkg/stats"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/centsible/centsible/pkg/user"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrNotConnected is returned when the user has not linked a Google account.
var ErrNotConnected = errors.New("google account not connected")

type SheetsExporter struct {
	auth               *GoogleAuth
	statsService       stats.StatsService
	transactionService transaction.Service
}

func NewSheetsExporter(auth *GoogleAuth, statsService stats.StatsService, transactionService transaction.Service) *SheetsExporter {
	return &SheetsExporter{auth: auth, statsService: statsService, transactionService: transactionService}
}

// Export creates a new spreadsheet holding the window's transactions and
// aggregated stats and returns its URL.
func (e *SheetsExporter) Export(ctx context.Context, window transaction.Window) (string, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	client, err := e.auth.getClient(ctx, userId)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", ErrNotConnected
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return "", fmt.Errorf("failed to create sheets service: %w", err)
	}

	txs, err := e.transactionService.List(ctx, window)
	if err != nil {
		return "", err
	}
	s, err := e.statsService.GetStats(ctx, window)
	if err != nil {
		return "", err
	}

	spreadsheet, err := service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: spreadsheetTitle(window),
		},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "Transactions"}},
			{Properties: &sheets.SheetProperties{Title: "Summary"}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	transactionRows := [][]interface{}{
		{"Date", "Label", "Amount", "Type", "Category"},
	}
	for _, tx := range txs {
		transactionRows = append(transactionRows, []interface{}{
			tx.Date, tx.Label, tx.Amount.Units(), string(tx.Type), string(tx.Category),
		})
	}

	summaryRows := [][]interface{}{
		{"", "Amount"},
		{"Total income", s.TotalIncome.Units()},
		{"Total expenses", s.TotalExpenses.Units()},
		{"Balance", s.Balance.Units()},
	}
	for _, category := range transaction.ExpenseCategories() {
		summaryRows = append(summaryRows, []interface{}{string(category), s.ExpensesByCategory[category].Units()})
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{"Transactions", transactionRows},
		{"Summary", summaryRows},
	} {
		_, err = service.Spreadsheets.Values.Update(
			spreadsheet.SpreadsheetId,
			fmt.Sprintf("%s!A1", sheet.name),
			&sheets.ValueRange{Values: sheet.rows},
		).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to write %s sheet: %w", sheet.name, err)
		}
	}

	log.Infof("Exported %d transactions to spreadsheet %s", len(txs), spreadsheet.SpreadsheetId)
	return spreadsheet.SpreadsheetUrl, nil
}

func spreadsheetTitle(window transaction.Window) string {
	if window.Mode == transaction.WindowAll {
		return "Centsible export"
	}
	return fmt.Sprintf("Centsible export %s", window.Period)
}
