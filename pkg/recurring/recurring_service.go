package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/centsible/centsible/internal/event_bus"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/centsible/centsible/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	List(ctx context.Context) ([]RecurringItem, error)
	Create(ctx context.Context, item RecurringItem) (RecurringItem, error)
	Delete(ctx context.Context, id string) error
	// Pending previews how many occurrences of the item are due as of the
	// given date without materializing anything.
	Pending(ctx context.Context, id string, asOf time.Time) (int, error)
	// MaterializeDue turns every due occurrence of every item into stored
	// transactions and advances each item's lastGenerated marker. Returns
	// the number of transactions created.
	MaterializeDue(ctx context.Context, asOf time.Time) (int, error)
}

type ServiceImpl struct {
	repo               Repo
	transactionService transaction.Service
	bus                *event_bus.EventBus
}

func NewService(repo Repo, transactionService transaction.Service, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, transactionService: transactionService, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context) ([]RecurringItem, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, item RecurringItem) (RecurringItem, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return RecurringItem{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := item.Validate(); err != nil {
		return RecurringItem{}, err
	}
	item.ID = uuid.NewString()
	item.LastGenerated = ""

	if err := s.repo.Store(ctx, userId, item); err != nil {
		return RecurringItem{}, err
	}
	return item, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *ServiceImpl) Pending(ctx context.Context, id string, asOf time.Time) (int, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current user: %w", err)
	}
	item, err := s.repo.Get(ctx, userId, id)
	if err != nil {
		return 0, err
	}
	return PendingCount(item, asOf), nil
}

func (s *ServiceImpl) MaterializeDue(ctx context.Context, asOf time.Time) (int, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current user: %w", err)
	}
	items, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, item := range items {
		txs := Materialize(item, asOf)
		if len(txs) == 0 {
			continue
		}
		for _, tx := range txs {
			if _, err := s.transactionService.Create(ctx, tx); err != nil {
				return generated, fmt.Errorf("failed to materialize recurring item %s: %w", item.ID, err)
			}
			generated++
		}

		lastGenerated := txs[len(txs)-1].Date
		if err := s.repo.UpdateLastGenerated(ctx, userId, item.ID, lastGenerated); err != nil {
			return generated, err
		}

		if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.RecurringMaterializedEvent, event_bus.RecurringMaterialized{
			ItemId:        item.ID,
			Generated:     len(txs),
			LastGenerated: lastGenerated,
		})); err != nil {
			log.Warnf("recurring materialized event handlers failed: %v", err)
		}
	}
	return generated, nil
}
