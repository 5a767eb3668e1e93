package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BalanceAdjustmentEntity struct {
	ID        uuid.UUID       `db:"id"         gorm:"primaryKey;type:uuid;column:id"`
	UserID    string          `db:"user_id"    gorm:"column:user_id;not null;index"`
	Amount    decimal.Decimal `db:"amount"     gorm:"column:amount;type:numeric;not null"`
	Reason    string          `db:"reason"     gorm:"column:reason;not null"`
	CreatedAt time.Time       `db:"created_at" gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt time.Time       `db:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (BalanceAdjustmentEntity) TableName() string {
	return "balance_adjustments"
}

func (e *BalanceAdjustmentEntity) BeforeCreate(*gorm.DB) error {
	newID(&e.ID)
	return nil
}

func toBalanceAdjustmentEntity(m *model.BalanceAdjustment) *BalanceAdjustmentEntity {
	if m == nil {
		return nil
	}
	return &BalanceAdjustmentEntity{
		ID:        m.ID,
		UserID:    m.OwnerID,
		Amount:    m.Amount,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBalanceAdjustmentModel(e *BalanceAdjustmentEntity) *model.BalanceAdjustment {
	if e == nil {
		return nil
	}
	return &model.BalanceAdjustment{
		ID:        e.ID,
		OwnerID:   e.UserID,
		Amount:    e.Amount,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toBalanceAdjustmentModels(entities []*BalanceAdjustmentEntity) []*model.BalanceAdjustment {
	if entities == nil {
		return nil
	}
	models := make([]*model.BalanceAdjustment, len(entities))
	for i, e := range entities {
		models[i] = toBalanceAdjustmentModel(e)
	}
	return models
}
