package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/repository"
	"github.com/nimasrn/money-management/pkg/logger"
	"github.com/nimasrn/money-management/pkg/prom"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrStore    = errors.New("store operation failed")
	// ErrInvalidOrder is returned when a list is sorted by a column that
	// cannot be sorted on.
	ErrInvalidOrder = errors.New("unknown sort column")
)

type ClientRepository interface {
	List(ctx context.Context, f model.ListFilter) ([]*model.Client, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Client, error)
	Create(ctx context.Context, c *model.Client) (*model.Client, error)
	Update(ctx context.Context, ownerID string, id uuid.UUID, v model.ClientValues) (*model.Client, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

type BalanceAdjustmentRepository interface {
	List(ctx context.Context, f model.ListFilter) ([]*model.BalanceAdjustment, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.BalanceAdjustment, error)
	Create(ctx context.Context, a *model.BalanceAdjustment) (*model.BalanceAdjustment, error)
	Update(ctx context.Context, ownerID string, id uuid.UUID, v model.AdjustmentValues) error
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

type PaymentTransactionRepository interface {
	Create(ctx context.Context, txn *model.PaymentTransaction) (*model.PaymentTransaction, error)
	List(ctx context.Context, f model.ListFilter) ([]*model.PaymentTransaction, error)
}

// ClientWriteResult reports both halves of a client write. The client row
// is written first; the payment transaction, when one is owed, second.
// A failed transaction write does not fail the operation, it only shows up
// as TransactionWriteOK == false.
type ClientWriteResult struct {
	Client              *model.Client             `json:"client"`
	Transaction         *model.PaymentTransaction `json:"transaction,omitempty"`
	ClientWriteOK       bool                      `json:"client_write_ok"`
	TransactionRequired bool                      `json:"transaction_required"`
	TransactionWriteOK  bool                      `json:"transaction_write_ok"`
}

type LedgerService struct {
	clients      ClientRepository
	adjustments  BalanceAdjustmentRepository
	transactions PaymentTransactionRepository
	now          func() time.Time
}

func NewLedgerService(clients ClientRepository, adjustments BalanceAdjustmentRepository, transactions PaymentTransactionRepository) *LedgerService {
	return &LedgerService{
		clients:      clients,
		adjustments:  adjustments,
		transactions: transactions,
		now:          time.Now,
	}
}

// WithClock replaces the time source used for payment dates.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

// CreateClient validates and stores a new client. A non-zero paid amount is
// recorded as one payment transaction for the full amount.
func (s *LedgerService) CreateClient(ctx context.Context, ownerID string, p model.ClientRequest) (*ClientWriteResult, error) {
	v, err := p.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.clients.Create(ctx, &model.Client{
		OwnerID:          ownerID,
		Name:             v.Name,
		TotalAmount:      v.TotalAmount,
		PaidAmount:       v.PaidAmount,
		SubscriptionType: v.SubscriptionType,
		StartDate:        v.StartDate,
		NextPaymentDate:  v.NextPaymentDate,
	})
	prom.LedgerOperation("create_client", err)
	if err != nil {
		return nil, storeError("create client", err)
	}

	res := &ClientWriteResult{Client: created, ClientWriteOK: true, TransactionWriteOK: true}
	if v.PaidAmount.IsPositive() {
		res.TransactionRequired = true
		res.Transaction, res.TransactionWriteOK = s.recordPayment(ctx, created, v.PaidAmount)
	}
	return res, nil
}

// EditClient overwrites a client with new values. When the paid amount
// grows, the difference is recorded as a payment under the new name.
// Lowering the paid amount records nothing.
func (s *LedgerService) EditClient(ctx context.Context, ownerID string, id uuid.UUID, p model.ClientRequest) (*ClientWriteResult, error) {
	v, err := p.Validate()
	if err != nil {
		return nil, err
	}

	current, err := s.clients.Get(ctx, ownerID, id)
	if err != nil {
		return nil, storeError("load client", err)
	}

	updated, err := s.clients.Update(ctx, ownerID, id, v)
	prom.LedgerOperation("edit_client", err)
	if err != nil {
		return nil, storeError("update client", err)
	}

	res := &ClientWriteResult{Client: updated, ClientWriteOK: true, TransactionWriteOK: true}
	delta := v.PaidAmount.Sub(current.PaidAmount)
	if delta.IsPositive() {
		res.TransactionRequired = true
		res.Transaction, res.TransactionWriteOK = s.recordPayment(ctx, updated, delta)
	}
	return res, nil
}

// recordPayment appends a transaction and swallows failure. The client
// write it follows has already been committed.
func (s *LedgerService) recordPayment(ctx context.Context, c *model.Client, amount decimal.Decimal) (*model.PaymentTransaction, bool) {
	txn, err := s.transactions.Create(ctx, &model.PaymentTransaction{
		OwnerID:     c.OwnerID,
		ClientID:    c.ID,
		ClientName:  c.Name,
		Amount:      amount,
		PaymentDate: s.now(),
	})
	if err != nil {
		prom.TransactionWriteFailure()
		logger.Error("[ledger] payment transaction not recorded",
			"owner", c.OwnerID,
			"client_id", c.ID.String(),
			"amount", amount.String(),
			"error", err,
		)
		return nil, false
	}
	return txn, true
}

// DeleteClient removes the client row. Its payment transactions stay.
func (s *LedgerService) DeleteClient(ctx context.Context, ownerID string, id uuid.UUID) error {
	err := s.clients.Delete(ctx, ownerID, id)
	prom.LedgerOperation("delete_client", err)
	if err != nil {
		return storeError("delete client", err)
	}
	return nil
}

// UpsertAdjustment inserts a new adjustment, or when editingID is set
// rewrites amount and reason of an existing one in place.
func (s *LedgerService) UpsertAdjustment(ctx context.Context, ownerID string, p model.AdjustmentRequest, editingID *uuid.UUID) (*model.BalanceAdjustment, error) {
	v, err := p.Validate()
	if err != nil {
		return nil, err
	}

	if editingID != nil {
		err = s.adjustments.Update(ctx, ownerID, *editingID, v)
		prom.LedgerOperation("update_adjustment", err)
		if err != nil {
			return nil, storeError("update adjustment", err)
		}
		return &model.BalanceAdjustment{ID: *editingID, OwnerID: ownerID, Amount: v.Amount, Reason: v.Reason}, nil
	}

	created, err := s.adjustments.Create(ctx, &model.BalanceAdjustment{
		OwnerID: ownerID,
		Amount:  v.Amount,
		Reason:  v.Reason,
	})
	prom.LedgerOperation("create_adjustment", err)
	if err != nil {
		return nil, storeError("create adjustment", err)
	}
	return created, nil
}

func (s *LedgerService) DeleteAdjustment(ctx context.Context, ownerID string, id uuid.UUID) error {
	err := s.adjustments.Delete(ctx, ownerID, id)
	prom.LedgerOperation("delete_adjustment", err)
	if err != nil {
		return storeError("delete adjustment", err)
	}
	return nil
}

// AdjustmentForm loads an adjustment split into magnitude and direction.
func (s *LedgerService) AdjustmentForm(ctx context.Context, ownerID string, id uuid.UUID) (*model.AdjustmentForm, error) {
	a, err := s.adjustments.Get(ctx, ownerID, id)
	if err != nil {
		return nil, storeError("load adjustment", err)
	}
	form := model.NewAdjustmentForm(a)
	return &form, nil
}

func storeError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, repository.ErrUnknownOrderColumn):
		return fmt.Errorf("%s: %w", op, ErrInvalidOrder)
	}
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
