package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentTransactionEntity has no foreign key to clients: the log outlives
// the client it refers to.
type PaymentTransactionEntity struct {
	ID          uuid.UUID       `db:"id"           gorm:"primaryKey;type:uuid;column:id"`
	UserID      string          `db:"user_id"      gorm:"column:user_id;not null;index"`
	ClientID    uuid.UUID       `db:"client_id"    gorm:"column:client_id;type:uuid;not null;index"`
	ClientName  string          `db:"client_name"  gorm:"column:client_name;not null"`
	Amount      decimal.Decimal `db:"amount"       gorm:"column:amount;type:numeric;not null"`
	PaymentDate time.Time       `db:"payment_date" gorm:"column:payment_date;not null;index"`
	CreatedAt   time.Time       `db:"created_at"   gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `db:"updated_at"   gorm:"column:updated_at;autoUpdateTime"`
}

func (PaymentTransactionEntity) TableName() string {
	return "payment_transactions"
}

func (e *PaymentTransactionEntity) BeforeCreate(*gorm.DB) error {
	newID(&e.ID)
	if e.PaymentDate.IsZero() {
		e.PaymentDate = time.Now()
	}
	return nil
}

func toPaymentTransactionEntity(m *model.PaymentTransaction) *PaymentTransactionEntity {
	if m == nil {
		return nil
	}
	return &PaymentTransactionEntity{
		ID:          m.ID,
		UserID:      m.OwnerID,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPaymentTransactionModel(e *PaymentTransactionEntity) *model.PaymentTransaction {
	if e == nil {
		return nil
	}
	return &model.PaymentTransaction{
		ID:          e.ID,
		OwnerID:     e.UserID,
		ClientID:    e.ClientID,
		ClientName:  e.ClientName,
		Amount:      e.Amount,
		PaymentDate: e.PaymentDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toPaymentTransactionModels(entities []*PaymentTransactionEntity) []*model.PaymentTransaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.PaymentTransaction, len(entities))
	for i, e := range entities {
		models[i] = toPaymentTransactionModel(e)
	}
	return models
}
