package transaction

import (
	"context"
	"fmt"

	"github.com/centsible/centsible/internal/event_bus"
	"github.com/centsible/centsible/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// List returns the current user's transactions restricted to the window,
	// newest first.
	List(ctx context.Context, w Window) ([]Transaction, error)
	Create(ctx context.Context, tx Transaction) (Transaction, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context, w Window) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	txs, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}
	return Filter(txs, w), nil
}

func (s *ServiceImpl) Create(ctx context.Context, tx Transaction) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	tx.ID = uuid.NewString()

	if err := s.repo.Store(ctx, userId, tx); err != nil {
		return Transaction{}, err
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreatedEvent, event_bus.TransactionCreated{
		Id:          tx.ID,
		Date:        tx.Date,
		Label:       tx.Label,
		AmountCents: tx.Amount.Cents,
		Type:        string(tx.Type),
		Category:    string(tx.Category),
	})); err != nil {
		log.Warnf("transaction created event handlers failed: %v", err)
	}

	return tx, nil
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
		log.Warnf("transaction not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrNotFound
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionDeletedEvent, event_bus.TransactionDeleted{
		Id: id,
	})); err != nil {
		log.Warnf("transaction deleted event handlers failed: %v", err)
	}
	return nil
}
