package google

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type exportResponse struct {
	SpreadsheetUrl string `json:"spreadsheetUrl"`
}

type SheetsHandler struct {
	exporter *SheetsExporter
}

func NewSheetsHandler(exporter *SheetsExporter) *SheetsHandler {
	return &SheetsHandler{exporter: exporter}
}

func (h *SheetsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	window := transaction.WindowFromQuery(r.URL.Query())
	if err := window.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid window",
			Details: "mode must be all, year (period YYYY) or month (period YYYY-MM)",
		})
		return
	}

	url, err := h.exporter.Export(r.Context(), window)
	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Google account not connected",
				Details: "Authorize via /api/integrations/google/auth first",
			})
			return
		}
		log.Errorf("sheets export failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(exportResponse{SpreadsheetUrl: url}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
