package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction tells whether an adjustment raises or lowers the company balance.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// BalanceAdjustment is a manual correction of the company balance. The sign
// of Amount carries the direction.
type BalanceAdjustment struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (BalanceAdjustment) TableName() string { return "balance_adjustments" }

// Direction derives the form direction from the stored sign.
func (a *BalanceAdjustment) Direction() Direction {
	if a.Amount.IsNegative() {
		return DirectionDecrease
	}
	return DirectionIncrease
}

// AdjustmentRequest is the form input: an unsigned magnitude plus a
// direction toggle.
type AdjustmentRequest struct {
	Amount    AmountText `json:"amount"`
	Direction Direction  `json:"direction"`
	Reason    string     `json:"reason"`
}

// AdjustmentValues is a validated AdjustmentRequest.
type AdjustmentValues struct {
	Amount decimal.Decimal
	Reason string
}

func (p AdjustmentRequest) Validate() (AdjustmentValues, error) {
	var v AdjustmentValues

	magnitude, ok := p.Amount.Parse()
	if !ok || !magnitude.IsPositive() {
		return v, &ValidationError{Field: "amount", Err: ErrInvalidAdjustmentAmount}
	}

	dir := p.Direction
	if dir == "" {
		dir = DirectionIncrease
	}
	if dir != DirectionIncrease && dir != DirectionDecrease {
		return v, &ValidationError{Field: "direction", Err: ErrInvalidDirection}
	}

	reason := strings.TrimSpace(p.Reason)
	if reason == "" {
		return v, &ValidationError{Field: "reason", Err: ErrEmptyReason}
	}

	signed := magnitude
	if dir == DirectionDecrease {
		signed = magnitude.Neg()
	}
	return AdjustmentValues{Amount: signed, Reason: reason}, nil
}

// AdjustmentForm is what an edit form is pre-filled with.
type AdjustmentForm struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Reason    string          `json:"reason"`
}

func NewAdjustmentForm(a *BalanceAdjustment) AdjustmentForm {
	return AdjustmentForm{
		ID:        a.ID,
		Amount:    a.Amount.Abs(),
		Direction: a.Direction(),
		Reason:    a.Reason,
	}
}
