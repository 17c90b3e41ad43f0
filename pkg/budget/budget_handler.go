package budget

import (
	"encoding/json"
	"net/http"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/stats"
	"github.com/centsible/centsible/pkg/transaction"
)

type BudgetCategoryDTO struct {
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	Target       float64 `json:"target"`
	Value        string  `json:"value"`
	TargetAmount string  `json:"targetAmount"`
	Percent      float64 `json:"percent"`
	IsOver       bool    `json:"isOver"`
	OverAmount   string  `json:"overAmount"`
}

type BudgetHandler struct {
	statsService stats.StatsService
	targets      Targets
}

func NewBudgetHandler(statsService stats.StatsService, targets Targets) *BudgetHandler {
	return &BudgetHandler{statsService: statsService, targets: targets}
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
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

	s, err := h.statsService.GetStats(r.Context(), window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categories := Evaluate(s, h.targets)
	dtos := make([]BudgetCategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, BudgetCategoryDTO{
			Name:         string(c.Name),
			Color:        c.Color,
			Target:       c.Target,
			Value:        c.Value.String(),
			TargetAmount: c.TargetAmount.String(),
			Percent:      c.Percent,
			IsOver:       c.IsOver,
			OverAmount:   c.OverAmount.String(),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
