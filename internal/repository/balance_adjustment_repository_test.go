package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceAdjustmentRepository(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewBalanceAdjustmentRepository(db)
	ctx := context.Background()

	created := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	adj, err := repo.Create(ctx, &model.BalanceAdjustment{
		OwnerID:   "owner-1",
		Amount:    dec("-20"),
		Reason:    "bank fee",
		CreatedAt: created,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, adj.ID)

	t.Run("update keeps created_at", func(t *testing.T) {
		err := repo.Update(ctx, "owner-1", adj.ID, model.AdjustmentValues{Amount: dec("50"), Reason: "refund"})
		require.NoError(t, err)

		got, err := repo.Get(ctx, "owner-1", adj.ID)
		require.NoError(t, err)
		assert.Equal(t, "50.00", got.Amount.StringFixed(2))
		assert.Equal(t, "refund", got.Reason)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("update of another owner's row changes nothing", func(t *testing.T) {
		err := repo.Update(ctx, "owner-2", adj.ID, model.AdjustmentValues{Amount: dec("1"), Reason: "x"})
		require.NoError(t, err)

		got, err := repo.Get(ctx, "owner-1", adj.ID)
		require.NoError(t, err)
		assert.Equal(t, "refund", got.Reason)
	})

	t.Run("list is owner scoped", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.BalanceAdjustment{OwnerID: "owner-2", Amount: dec("5"), Reason: "other"})
		require.NoError(t, err)

		list, err := repo.List(ctx, model.ListFilter{OwnerID: "owner-1"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, adj.ID, list[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "owner-1", adj.ID))
		_, err := repo.Get(ctx, "owner-1", adj.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, repo.Delete(ctx, "owner-1", adj.ID))
	})
}
