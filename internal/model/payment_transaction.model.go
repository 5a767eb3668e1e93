package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTransaction records money received from a client. Rows are only
// ever appended; ClientName is the name at payment time.
type PaymentTransaction struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     string          `json:"user_id"`
	ClientID    uuid.UUID       `json:"client_id"`
	ClientName  string          `json:"client_name"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (PaymentTransaction) TableName() string { return "payment_transactions" }

// ListFilter scopes a List call to one owner. OrderBy must be one of the
// columns the repository allows; empty means the entity default.
type ListFilter struct {
	OwnerID   string
	OrderBy   string
	Ascending bool
}
