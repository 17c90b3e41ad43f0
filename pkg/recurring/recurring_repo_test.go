package recurring

import (
	"context"
	"testing"

	"github.com/centsible/centsible/internal/test_utils"
	"github.com/centsible/centsible/pkg/money"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRoundtrip(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	test_utils.InsertTestUser(t, db)
	repo := NewRepo(db)
	ctx := context.Background()
	userId := test_utils.TestUser.Id

	item := RecurringItem{
		ID:             "66666666-6666-4666-8666-666666666666",
		Label:          "Rent",
		Amount:         money.FromCents(90000),
		Type:           transaction.Expense,
		Category:       transaction.Needs,
		Frequency:      Monthly,
		StartDate:      "2025-01-01",
		DurationMonths: 12,
	}
	require.NoError(t, repo.Store(ctx, userId, item))

	got, err := repo.Get(ctx, userId, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)

	items, err := repo.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestRepoUpdateLastGenerated(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	test_utils.InsertTestUser(t, db)
	repo := NewRepo(db)
	ctx := context.Background()
	userId := test_utils.TestUser.Id

	item := RecurringItem{
		ID:        "77777777-7777-4777-8777-777777777777",
		Label:     "Netflix",
		Amount:    money.FromCents(5000),
		Type:      transaction.Expense,
		Category:  transaction.Wants,
		Frequency: Monthly,
		StartDate: "2025-01-15",
	}
	require.NoError(t, repo.Store(ctx, userId, item))
	require.NoError(t, repo.UpdateLastGenerated(ctx, userId, item.ID, "2025-03-15"))

	got, err := repo.Get(ctx, userId, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", got.LastGenerated)
}

func TestRepoGetMissingItem(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	test_utils.InsertTestUser(t, db)
	repo := NewRepo(db)

	_, err := repo.Get(context.Background(), test_utils.TestUser.Id, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepoDelete(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	test_utils.InsertTestUser(t, db)
	repo := NewRepo(db)
	ctx := context.Background()
	userId := test_utils.TestUser.Id

	item := RecurringItem{
		ID:        "88888888-8888-4888-8888-888888888888",
		Label:     "Gym",
		Amount:    money.FromCents(3000),
		Type:      transaction.Expense,
		Category:  transaction.Wants,
		Frequency: Monthly,
		StartDate: "2025-02-01",
	}
	require.NoError(t, repo.Store(ctx, userId, item))

	deleted, err := repo.Delete(ctx, userId, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, userId, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
