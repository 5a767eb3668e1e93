package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionType is how a client is billed.
type SubscriptionType string

const (
	SubscriptionMonthly SubscriptionType = "monthly"
	SubscriptionOneTime SubscriptionType = "one-time"
)

// Label is the human readable form used in reports.
func (s SubscriptionType) Label() string {
	if s == SubscriptionMonthly {
		return "Monthly"
	}
	return "One-Time"
}

func (s SubscriptionType) Valid() bool {
	return s == SubscriptionMonthly || s == SubscriptionOneTime
}

type Client struct {
	ID               uuid.UUID        `json:"id"`
	OwnerID          string           `json:"user_id"`
	Name             string           `json:"name"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	PaidAmount       decimal.Decimal  `json:"paid_amount"`
	SubscriptionType SubscriptionType `json:"subscription_type"`
	StartDate        *time.Time       `json:"start_date"`
	NextPaymentDate  *time.Time       `json:"next_payment_date"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

// Remaining is what the client still owes.
func (c *Client) Remaining() decimal.Decimal {
	return c.TotalAmount.Sub(c.PaidAmount)
}

// ClientRequest is the input for creating or editing a client. Amounts are
// kept as typed so validation can reject non-numeric input explicitly.
type ClientRequest struct {
	Name             string           `json:"name"`
	TotalAmount      AmountText       `json:"total_amount"`
	PaidAmount       AmountText       `json:"paid_amount"`
	SubscriptionType SubscriptionType `json:"subscription_type"`
	StartDate        DateText         `json:"start_date"`
	NextPaymentDate  DateText         `json:"next_payment_date"`
}

// ClientValues is a validated ClientRequest.
type ClientValues struct {
	Name             string
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	SubscriptionType SubscriptionType
	StartDate        *time.Time
	NextPaymentDate  *time.Time
}

// Validate checks the request and returns the values to persist. Checks run
// in a fixed order and the first failure is returned.
func (p ClientRequest) Validate() (ClientValues, error) {
	var v ClientValues

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return v, &ValidationError{Field: "name", Err: ErrEmptyName}
	}

	total, ok := p.TotalAmount.Parse()
	if !ok || total.IsNegative() {
		return v, &ValidationError{Field: "total_amount", Err: ErrInvalidTotalAmount}
	}

	paid, ok := p.PaidAmount.Parse()
	if !ok || paid.IsNegative() {
		return v, &ValidationError{Field: "paid_amount", Err: ErrInvalidPaidAmount}
	}

	if paid.GreaterThan(total) {
		return v, &ValidationError{Field: "paid_amount", Err: ErrPaidExceedsTotal}
	}

	st := p.SubscriptionType
	if st == "" {
		st = SubscriptionOneTime
	}
	if !st.Valid() {
		return v, &ValidationError{Field: "subscription_type", Err: ErrInvalidSubscriptionType}
	}

	v = ClientValues{
		Name:             name,
		TotalAmount:      total,
		PaidAmount:       paid,
		SubscriptionType: st,
	}
	// dates only mean something for monthly billing
	if st == SubscriptionMonthly {
		start, err := p.StartDate.Parse()
		if err != nil {
			return ClientValues{}, &ValidationError{Field: "start_date", Err: ErrInvalidDate}
		}
		next, err := p.NextPaymentDate.Parse()
		if err != nil {
			return ClientValues{}, &ValidationError{Field: "next_payment_date", Err: ErrInvalidDate}
		}
		v.StartDate = start
		v.NextPaymentDate = next
	}
	return v, nil
}
