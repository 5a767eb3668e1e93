package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/pkg/pg"
)

type BalanceAdjustmentRepository struct {
	*pg.DB
}

func NewBalanceAdjustmentRepository(db *pg.DB) *BalanceAdjustmentRepository {
	return &BalanceAdjustmentRepository{
		db,
	}
}

func (r *BalanceAdjustmentRepository) List(ctx context.Context, f model.ListFilter) ([]*model.BalanceAdjustment, error) {
	order, err := ordering(f.OrderBy, f.Ascending, "created_at", "created_at", "updated_at", "amount")
	if err != nil {
		return nil, err
	}

	entities := []*BalanceAdjustmentEntity{}
	err = r.Read(ctx).
		Where("user_id = ?", f.OwnerID).
		Order(order).
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toBalanceAdjustmentModels(entities), nil
}

func (r *BalanceAdjustmentRepository) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.BalanceAdjustment, error) {
	var entity BalanceAdjustmentEntity
	err := r.Read(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&entity).
		Error
	if err != nil {
		return nil, notFound(err)
	}
	return toBalanceAdjustmentModel(&entity), nil
}

func (r *BalanceAdjustmentRepository) Create(ctx context.Context, a *model.BalanceAdjustment) (*model.BalanceAdjustment, error) {
	entity := toBalanceAdjustmentEntity(a)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toBalanceAdjustmentModel(entity), nil
}

// Update rewrites amount and reason in place; created_at is never touched.
// A missing id updates nothing and is not an error.
func (r *BalanceAdjustmentRepository) Update(ctx context.Context, ownerID string, id uuid.UUID, v model.AdjustmentValues) error {
	return r.Write(ctx).
		Model(&BalanceAdjustmentEntity{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{
			"amount": v.Amount,
			"reason": v.Reason,
		}).
		Error
}

func (r *BalanceAdjustmentRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return r.Write(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&BalanceAdjustmentEntity{}).
		Error
}
