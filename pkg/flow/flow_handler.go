package flow

import (
	"encoding/json"
	"net/http"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/transaction"
)

type NodeDTO struct {
	Name string `json:"name"`
}

type EdgeDTO struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type GraphDTO struct {
	Nodes []NodeDTO `json:"nodes"`
	Edges []EdgeDTO `json:"edges"`
}

type FlowHandler struct {
	transactionService transaction.Service
	targets            budget.Targets
}

func NewFlowHandler(transactionService transaction.Service, targets budget.Targets) *FlowHandler {
	return &FlowHandler{transactionService: transactionService, targets: targets}
}

func (h *FlowHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	window := transaction.WindowFromQuery(r.URL.Query())
	if err := window.Validate(); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid window",
			Details: "mode must be all, year (period YYYY) or month (period YYYY-MM)",
		})
		return
	}

	txs, err := h.transactionService.List(r.Context(), window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	graph := BuildFlow(txs, h.targets)
	if graph == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	dto := GraphDTO{
		Nodes: make([]NodeDTO, 0, len(graph.Nodes)),
		Edges: make([]EdgeDTO, 0, len(graph.Edges)),
	}
	for _, n := range graph.Nodes {
		dto.Nodes = append(dto.Nodes, NodeDTO{Name: n.Name})
	}
	for _, e := range graph.Edges {
		dto.Edges = append(dto.Edges, EdgeDTO{From: e.From, To: e.To, Amount: e.Amount.String()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
