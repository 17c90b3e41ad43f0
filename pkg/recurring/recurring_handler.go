package recurring

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/internal/utils"
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RecurringItemDTO struct {
	ID             string `json:"id,omitempty"`
	Label          string `json:"label"`
	Amount         string `json:"amount"`
	Type           string `json:"type"`
	Category       string `json:"category"`
	Frequency      string `json:"frequency"`
	StartDate      string `json:"startDate"`
	DurationMonths int    `json:"durationMonths"`
	LastGenerated  string `json:"lastGenerated,omitempty"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]RecurringItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new recurring item")
	w.Header().Set("Content-Type", "application/json")

	var dto RecurringItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := fromDTO(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid recurring item", Details: err.Error()})
		return
	}

	created, err := h.service.Create(r.Context(), item)
	if err != nil {
		if isValidationError(err) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid recurring item", Details: err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Recurring item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	count, err := h.service.Pending(r.Context(), id, utils.Today(h.clock))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Recurring item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Pending int `json:"pending"`
	}{Pending: count}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Materialize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	generated, err := h.service.MaterializeDue(r.Context(), utils.Today(h.clock))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Generated int `json:"generated"`
	}{Generated: generated}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(item RecurringItem) RecurringItemDTO {
	return RecurringItemDTO{
		ID:             item.ID,
		Label:          item.Label,
		Amount:         item.Amount.String(),
		Type:           string(item.Type),
		Category:       string(item.Category),
		Frequency:      string(item.Frequency),
		StartDate:      item.StartDate,
		DurationMonths: item.DurationMonths,
		LastGenerated:  item.LastGenerated,
	}
}

func fromDTO(dto RecurringItemDTO) (RecurringItem, error) {
	amount, err := money.Parse(dto.Amount)
	if err != nil {
		return RecurringItem{}, err
	}
	return RecurringItem{
		ID:             dto.ID,
		Label:          dto.Label,
		Amount:         amount,
		Type:           transaction.Type(dto.Type),
		Category:       transaction.Category(dto.Category),
		Frequency:      Frequency(dto.Frequency),
		StartDate:      dto.StartDate,
		DurationMonths: dto.DurationMonths,
	}, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, transaction.ErrEmptyLabel) ||
		errors.Is(err, transaction.ErrInvalidDate) ||
		errors.Is(err, transaction.ErrInvalidType) ||
		errors.Is(err, money.ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidFrequency) ||
		errors.Is(err, ErrInvalidDuration)
}
