package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) List(ctx context.Context, f model.ListFilter) ([]*model.Client, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Client), args.Error(1)
}

func (m *MockClientRepository) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, *model.Client) (*model.Client, error)); ok {
		return fn(ctx, c)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, ownerID string, id uuid.UUID, v model.ClientValues) (*model.Client, error) {
	args := m.Called(ctx, ownerID, id, v)
	if fn, ok := args.Get(0).(func(context.Context, string, uuid.UUID, model.ClientValues) (*model.Client, error)); ok {
		return fn(ctx, ownerID, id, v)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) List(ctx context.Context, f model.ListFilter) ([]*model.BalanceAdjustment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.BalanceAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.BalanceAdjustment, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BalanceAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) Create(ctx context.Context, a *model.BalanceAdjustment) (*model.BalanceAdjustment, error) {
	args := m.Called(ctx, a)
	if fn, ok := args.Get(0).(func(context.Context, *model.BalanceAdjustment) (*model.BalanceAdjustment, error)); ok {
		return fn(ctx, a)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BalanceAdjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) Update(ctx context.Context, ownerID string, id uuid.UUID, v model.AdjustmentValues) error {
	return m.Called(ctx, ownerID, id, v).Error(0)
}

func (m *MockAdjustmentRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *model.PaymentTransaction) (*model.PaymentTransaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentTransaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, f model.ListFilter) ([]*model.PaymentTransaction, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PaymentTransaction), args.Error(1)
}
