package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClientEntity struct {
	ID               uuid.UUID       `db:"id"                gorm:"primaryKey;type:uuid;column:id"`
	UserID           string          `db:"user_id"           gorm:"column:user_id;not null;index"`
	Name             string          `db:"name"              gorm:"column:name;not null"`
	TotalAmount      decimal.Decimal `db:"total_amount"      gorm:"column:total_amount;type:numeric;not null;default:0"`
	PaidAmount       decimal.Decimal `db:"paid_amount"       gorm:"column:paid_amount;type:numeric;not null;default:0"`
	SubscriptionType string          `db:"subscription_type" gorm:"column:subscription_type;not null;default:one-time"`
	StartDate        *time.Time      `db:"start_date"        gorm:"column:start_date;type:date"`
	NextPaymentDate  *time.Time      `db:"next_payment_date" gorm:"column:next_payment_date;type:date"`
	CreatedAt        time.Time       `db:"created_at"        gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt        time.Time       `db:"updated_at"        gorm:"column:updated_at;autoUpdateTime"`
}

func (ClientEntity) TableName() string {
	return "clients"
}

func (e *ClientEntity) BeforeCreate(*gorm.DB) error {
	newID(&e.ID)
	return nil
}

func toClientEntity(m *model.Client) *ClientEntity {
	if m == nil {
		return nil
	}
	return &ClientEntity{
		ID:               m.ID,
		UserID:           m.OwnerID,
		Name:             m.Name,
		TotalAmount:      m.TotalAmount,
		PaidAmount:       m.PaidAmount,
		SubscriptionType: string(m.SubscriptionType),
		StartDate:        m.StartDate,
		NextPaymentDate:  m.NextPaymentDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toClientModel(e *ClientEntity) *model.Client {
	if e == nil {
		return nil
	}
	return &model.Client{
		ID:               e.ID,
		OwnerID:          e.UserID,
		Name:             e.Name,
		TotalAmount:      e.TotalAmount,
		PaidAmount:       e.PaidAmount,
		SubscriptionType: model.SubscriptionType(e.SubscriptionType),
		StartDate:        e.StartDate,
		NextPaymentDate:  e.NextPaymentDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func toClientModels(entities []*ClientEntity) []*model.Client {
	if entities == nil {
		return nil
	}
	models := make([]*model.Client, len(entities))
	for i, e := range entities {
		models[i] = toClientModel(e)
	}
	return models
}
