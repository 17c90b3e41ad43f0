package transaction

import (
	"context"
	"testing"

	"github.com/centsible/centsible/internal/event_bus"
	"github.com/centsible/centsible/internal/test_utils"
	"github.com/centsible/centsible/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreate(t *testing.T) {
	repo := NewStubRepo()
	bus := event_bus.NewEventBus()
	service := NewService(repo, bus)
	ctx := test_utils.ContextWithTestUser(context.Background())

	var published []event_bus.TransactionCreated
	event_bus.SubscribeTyped(bus, event_bus.TransactionCreatedEvent, func(e event_bus.EventT[event_bus.TransactionCreated]) error {
		published = append(published, e.Data)
		return nil
	})

	created, err := service.Create(ctx, Transaction{
		Date:     "2025-03-14",
		Label:    "Groceries",
		Amount:   money.FromCents(4250),
		Type:     Expense,
		Category: Needs,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, err := repo.GetAll(ctx, test_utils.TestUser.Id)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created, stored[0])

	require.Len(t, published, 1)
	assert.Equal(t, created.ID, published[0].Id)
	assert.Equal(t, int64(4250), published[0].AmountCents)
}

func TestServiceCreateRejectsInvalidTransaction(t *testing.T) {
	service := NewService(NewStubRepo(), event_bus.NewEventBus())
	ctx := test_utils.ContextWithTestUser(context.Background())

	_, err := service.Create(ctx, Transaction{
		Date:     "2025-03-14",
		Label:    "",
		Amount:   money.FromCents(100),
		Type:     Expense,
		Category: Needs,
	})
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestServiceCreateRequiresUser(t *testing.T) {
	service := NewService(NewStubRepo(), event_bus.NewEventBus())

	_, err := service.Create(context.Background(), Transaction{
		Date:     "2025-03-14",
		Label:    "Groceries",
		Amount:   money.FromCents(100),
		Type:     Expense,
		Category: Needs,
	})
	assert.Error(t, err)
}

func TestServiceListAppliesWindow(t *testing.T) {
	repo := NewStubRepo()
	service := NewService(repo, event_bus.NewEventBus())
	ctx := test_utils.ContextWithTestUser(context.Background())

	for _, tx := range []Transaction{
		{Date: "2025-02-28", Label: "February rent", Amount: money.FromCents(90000), Type: Expense, Category: Needs},
		{Date: "2025-03-01", Label: "March rent", Amount: money.FromCents(90000), Type: Expense, Category: Needs},
		{Date: "2025-03-20", Label: "Concert", Amount: money.FromCents(6000), Type: Expense, Category: Wants},
	} {
		_, err := service.Create(ctx, tx)
		require.NoError(t, err)
	}

	txs, err := service.List(ctx, Window{Mode: WindowMonth, Period: "2025-03"})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	// Stub prepends, so newest stored first
	assert.Equal(t, "Concert", txs[0].Label)
	assert.Equal(t, "March rent", txs[1].Label)
}

func TestServiceListRejectsInvalidWindow(t *testing.T) {
	service := NewService(NewStubRepo(), event_bus.NewEventBus())
	ctx := test_utils.ContextWithTestUser(context.Background())

	_, err := service.List(ctx, Window{Mode: WindowMonth, Period: "2025"})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestServiceDelete(t *testing.T) {
	repo := NewStubRepo()
	bus := event_bus.NewEventBus()
	service := NewService(repo, bus)
	ctx := test_utils.ContextWithTestUser(context.Background())

	var deletedIds []string
	event_bus.SubscribeTyped(bus, event_bus.TransactionDeletedEvent, func(e event_bus.EventT[event_bus.TransactionDeleted]) error {
		deletedIds = append(deletedIds, e.Data.Id)
		return nil
	})

	created, err := service.Create(ctx, Transaction{
		Date:     "2025-03-14",
		Label:    "Groceries",
		Amount:   money.FromCents(4250),
		Type:     Expense,
		Category: Needs,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Equal(t, []string{created.ID}, deletedIds)

	err = service.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
