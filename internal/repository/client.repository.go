package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/pkg/pg"
)

type ClientRepository struct {
	*pg.DB
}

func NewClientRepository(db *pg.DB) *ClientRepository {
	return &ClientRepository{
		db,
	}
}

// List returns the owner's clients, newest first unless told otherwise.
func (r *ClientRepository) List(ctx context.Context, f model.ListFilter) ([]*model.Client, error) {
	order, err := ordering(f.OrderBy, f.Ascending, "created_at",
		"created_at", "updated_at", "name", "total_amount", "paid_amount", "next_payment_date")
	if err != nil {
		return nil, err
	}

	entities := []*ClientEntity{}
	err = r.Read(ctx).
		Where("user_id = ?", f.OwnerID).
		Order(order).
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toClientModels(entities), nil
}

func (r *ClientRepository) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Client, error) {
	var entity ClientEntity
	err := r.Read(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&entity).
		Error
	if err != nil {
		return nil, notFound(err)
	}
	return toClientModel(&entity), nil
}

func (r *ClientRepository) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	entity := toClientEntity(c)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toClientModel(entity), nil
}

// Update overwrites the editable columns, nil dates included, and returns the
// stored row.
func (r *ClientRepository) Update(ctx context.Context, ownerID string, id uuid.UUID, v model.ClientValues) (*model.Client, error) {
	err := r.Write(ctx).
		Model(&ClientEntity{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{
			"name":              v.Name,
			"total_amount":      v.TotalAmount,
			"paid_amount":       v.PaidAmount,
			"subscription_type": string(v.SubscriptionType),
			"start_date":        v.StartDate,
			"next_payment_date": v.NextPaymentDate,
		}).
		Error
	if err != nil {
		return nil, err
	}

	var entity ClientEntity
	err = r.Write(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&entity).
		Error
	if err != nil {
		return nil, notFound(err)
	}
	return toClientModel(&entity), nil
}

// Delete removes the client row. Payment transactions that reference it are
// left untouched. Deleting a missing row is not an error.
func (r *ClientRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return r.Write(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&ClientEntity{}).
		Error
}
