package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/money"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TransactionDTO carries amounts as decimal strings ("12.34") so no float
// rounding happens on the wire.
type TransactionDTO struct {
	ID       string `json:"id,omitempty"`
	Date     string `json:"date"`
	Label    string `json:"label"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// WindowFromQuery reads the reporting window from mode/period query
// parameters. Absent parameters mean the all-time window.
func WindowFromQuery(q url.Values) Window {
	mode := q.Get("mode")
	if mode == "" {
		mode = string(WindowAll)
	}
	return Window{Mode: WindowMode(mode), Period: q.Get("period")}
}

func writeInvalidWindow(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid window",
		Details: "mode must be all, year or month; period must be YYYY for year and YYYY-MM for month",
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	window := WindowFromQuery(r.URL.Query())
	txs, err := h.service.List(r.Context(), window)
	if err != nil {
		if errors.Is(err, ErrInvalidWindow) {
			writeInvalidWindow(w)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, ToDTO(tx))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, err := FromDTO(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), tx)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func ToDTO(tx Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       tx.ID,
		Date:     tx.Date,
		Label:    tx.Label,
		Amount:   tx.Amount.String(),
		Type:     string(tx.Type),
		Category: string(tx.Category),
	}
}

func FromDTO(dto TransactionDTO) (Transaction, error) {
	amount, err := money.Parse(dto.Amount)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:       dto.ID,
		Date:     dto.Date,
		Label:    dto.Label,
		Amount:   amount,
		Type:     Type(dto.Type),
		Category: Category(dto.Category),
	}, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrEmptyLabel) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, money.ErrInvalidAmount)
}
