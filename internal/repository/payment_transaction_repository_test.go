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

func TestPaymentTransactionRepository_Create(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewPaymentTransactionRepository(db)
	ctx := context.Background()

	t.Run("payment date defaults to now", func(t *testing.T) {
		before := time.Now().Add(-time.Second)
		created, err := repo.Create(ctx, &model.PaymentTransaction{
			OwnerID:    "owner-1",
			ClientID:   uuid.New(),
			ClientName: "Acme",
			Amount:     dec("25"),
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.True(t, created.PaymentDate.After(before))
	})

	t.Run("explicit payment date is kept", func(t *testing.T) {
		paid := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
		created, err := repo.Create(ctx, &model.PaymentTransaction{
			OwnerID:     "owner-1",
			ClientID:    uuid.New(),
			ClientName:  "Globex",
			Amount:      dec("10"),
			PaymentDate: paid,
		})
		require.NoError(t, err)
		assert.True(t, created.PaymentDate.Equal(paid))
	})
}

func TestPaymentTransactionRepository_List(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewPaymentTransactionRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, amount := range []string{"10", "20", "30"} {
		_, err := repo.Create(ctx, &model.PaymentTransaction{
			OwnerID:     "owner-1",
			ClientID:    uuid.New(),
			ClientName:  "client",
			Amount:      dec(amount),
			PaymentDate: base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &model.PaymentTransaction{
		OwnerID:    "owner-2",
		ClientID:   uuid.New(),
		ClientName: "foreign",
		Amount:     dec("99"),
	})
	require.NoError(t, err)

	t.Run("latest payment first", func(t *testing.T) {
		txns, err := repo.List(ctx, model.ListFilter{OwnerID: "owner-1"})
		require.NoError(t, err)
		require.Len(t, txns, 3)
		assert.Equal(t, "30.00", txns[0].Amount.StringFixed(2))
		assert.Equal(t, "10.00", txns[2].Amount.StringFixed(2))
	})

	t.Run("ascending", func(t *testing.T) {
		txns, err := repo.List(ctx, model.ListFilter{OwnerID: "owner-1", Ascending: true})
		require.NoError(t, err)
		require.Len(t, txns, 3)
		assert.Equal(t, "10.00", txns[0].Amount.StringFixed(2))
	})
}
