package repository

import (
	"context"

	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/pkg/pg"
)

// PaymentTransactionRepository is append-only: there is no Update or Delete.
type PaymentTransactionRepository struct {
	*pg.DB
}

func NewPaymentTransactionRepository(db *pg.DB) *PaymentTransactionRepository {
	return &PaymentTransactionRepository{
		db,
	}
}

func (r *PaymentTransactionRepository) Create(ctx context.Context, txn *model.PaymentTransaction) (*model.PaymentTransaction, error) {
	entity := toPaymentTransactionEntity(txn)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toPaymentTransactionModel(entity), nil
}

// List returns the owner's payments, latest payment first by default.
func (r *PaymentTransactionRepository) List(ctx context.Context, f model.ListFilter) ([]*model.PaymentTransaction, error) {
	order, err := ordering(f.OrderBy, f.Ascending, "payment_date", "payment_date", "created_at", "amount", "client_name")
	if err != nil {
		return nil, err
	}

	entities := []*PaymentTransactionEntity{}
	err = r.Read(ctx).
		Where("user_id = ?", f.OwnerID).
		Order(order).
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toPaymentTransactionModels(entities), nil
}
