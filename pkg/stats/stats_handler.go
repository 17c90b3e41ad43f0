package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type StatsDTO struct {
	TotalIncome        string            `json:"totalIncome"`
	TotalExpenses      string            `json:"totalExpenses"`
	Balance            string            `json:"balance"`
	ExpensesByCategory map[string]string `json:"expensesByCategory"`
}

type StatsHandler struct {
	statsService     StatsService
	csvStatsRenderer StatsRenderer
	xlsxRenderer     *XlsxStatsRenderer
	chartRenderer    *ChartRenderer
}

// StatsRenderer turns aggregated stats into a textual export format.
type StatsRenderer interface {
	RenderStats(stats Stats) (string, error)
}

func NewStatsHandler(
	statsService StatsService,
	csvStatsRenderer StatsRenderer,
	xlsxRenderer *XlsxStatsRenderer,
	chartRenderer *ChartRenderer,
) *StatsHandler {
	return &StatsHandler{statsService, csvStatsRenderer, xlsxRenderer, chartRenderer}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	window := transaction.WindowFromQuery(r.URL.Query())
	if err := window.Validate(); err != nil {
		writeInvalidWindow(w)
		return
	}

	stats, err := h.statsService.GetStats(r.Context(), window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		workbook, err := h.xlsxRenderer.RenderStats(stats)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\"stats.xlsx\"")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(workbook); err != nil {
			log.Errorf("Error writing xlsx response: %v", err)
		}
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		csvData, err := h.csvStatsRenderer.RenderStats(stats)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\"stats.csv\"")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csvData)); err != nil {
			log.Errorf("Error writing csv response: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toStatsDTO(stats)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *StatsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	window := transaction.WindowFromQuery(r.URL.Query())
	if err := window.Validate(); err != nil {
		writeInvalidWindow(w)
		return
	}

	stats, err := h.statsService.GetStats(r.Context(), window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	png, err := h.chartRenderer.RenderCategoryPie(stats)
	if err != nil {
		if errors.Is(err, ErrNoExpenses) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Errorf("Error writing chart response: %v", err)
	}
}

func writeInvalidWindow(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid window",
		Details: "mode must be all, year (period YYYY) or month (period YYYY-MM)",
	})
}

func toStatsDTO(stats Stats) StatsDTO {
	byCategory := make(map[string]string, len(stats.ExpensesByCategory))
	for category, amount := range stats.ExpensesByCategory {
		byCategory[string(category)] = amount.String()
	}
	return StatsDTO{
		TotalIncome:        stats.TotalIncome.String(),
		TotalExpenses:      stats.TotalExpenses.String(),
		Balance:            stats.Balance.String(),
		ExpensesByCategory: byCategory,
	}
}
