package recurring

import (
	"context"
	"testing"
	"time"

	"github.com/centsible/centsible/internal/event_bus"
	"github.com/centsible/centsible/internal/test_utils"
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*ServiceImpl, *transaction.StubRepo, *event_bus.EventBus) {
	bus := event_bus.NewEventBus()
	txRepo := transaction.NewStubRepo()
	txService := transaction.NewService(txRepo, bus)
	return NewService(NewStubRepo(), txService, bus), txRepo, bus
}

func TestServiceCreateAssignsIdAndClearsLastGenerated(t *testing.T) {
	service, _, _ := newTestService()
	ctx := test_utils.ContextWithTestUser(context.Background())

	created, err := service.Create(ctx, RecurringItem{
		Label:         "Rent",
		Amount:        money.FromCents(90000),
		Type:          transaction.Expense,
		Category:      transaction.Needs,
		Frequency:     Monthly,
		StartDate:     "2025-01-01",
		LastGenerated: "2025-03-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// The marker only advances through materialization
	assert.Empty(t, created.LastGenerated)
}

func TestServiceCreateRejectsInvalidItem(t *testing.T) {
	service, _, _ := newTestService()
	ctx := test_utils.ContextWithTestUser(context.Background())

	_, err := service.Create(ctx, RecurringItem{
		Label:     "Rent",
		Amount:    money.FromCents(90000),
		Type:      transaction.Expense,
		Category:  transaction.Needs,
		Frequency: "yearly",
		StartDate: "2025-01-01",
	})
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestMaterializeDueStoresTransactionsAndAdvancesMarker(t *testing.T) {
	service, txRepo, bus := newTestService()
	ctx := test_utils.ContextWithTestUser(context.Background())

	var events []event_bus.RecurringMaterialized
	event_bus.SubscribeTyped(bus, event_bus.RecurringMaterializedEvent, func(e event_bus.EventT[event_bus.RecurringMaterialized]) error {
		events = append(events, e.Data)
		return nil
	})

	item, err := service.Create(ctx, RecurringItem{
		Label:          "Netflix",
		Amount:         money.FromCents(5000),
		Type:           transaction.Expense,
		Category:       transaction.Wants,
		Frequency:      Monthly,
		StartDate:      "2025-01-15",
		DurationMonths: 3,
	})
	require.NoError(t, err)

	asOf := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	generated, err := service.MaterializeDue(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 3, generated)

	txs, err := txRepo.GetAll(ctx, test_utils.TestUser.Id)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	for _, tx := range txs {
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "Netflix", tx.Label)
	}

	require.Len(t, events, 1)
	assert.Equal(t, item.ID, events[0].ItemId)
	assert.Equal(t, 3, events[0].Generated)
	assert.Equal(t, "2025-03-15", events[0].LastGenerated)

	// Second run with the marker persisted generates nothing more
	generated, err = service.MaterializeDue(ctx, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, generated)

	pending, err := service.Pending(ctx, item.ID, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestServiceDelete(t *testing.T) {
	service, _, _ := newTestService()
	ctx := test_utils.ContextWithTestUser(context.Background())

	item, err := service.Create(ctx, RecurringItem{
		Label:     "Gym",
		Amount:    money.FromCents(3000),
		Type:      transaction.Expense,
		Category:  transaction.Wants,
		Frequency: Monthly,
		StartDate: "2025-02-01",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, item.ID))
	assert.ErrorIs(t, service.Delete(ctx, item.ID), ErrNotFound)
}
