package usecase

import (
	"context"

	"payment-api/internal/data/entity"
	"payment-api/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type methodRepoMock struct{ mock.Mock }

func (m *methodRepoMock) FindByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	args := m.Called(ctx, id)
	method, _ := args.Get(0).(*entity.PaymentMethod)
	return method, args.Error(1)
}

func (m *methodRepoMock) FindAll(ctx context.Context) ([]*entity.PaymentMethod, error) {
	args := m.Called(ctx)
	methods, _ := args.Get(0).([]*entity.PaymentMethod)
	return methods, args.Error(1)
}

func (m *methodRepoMock) Save(ctx context.Context, method *entity.PaymentMethod) error {
	return m.Called(ctx, method).Error(0)
}

func (m *methodRepoMock) Remove(ctx context.Context, method *entity.PaymentMethod) error {
	return m.Called(ctx, method).Error(0)
}

type paymentRepoMock struct{ mock.Mock }

func (m *paymentRepoMock) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	payment, _ := args.Get(0).(*entity.Payment)
	return payment, args.Error(1)
}

func (m *paymentRepoMock) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	args := m.Called(ctx)
	payments, _ := args.Get(0).([]*entity.Payment)
	return payments, args.Error(1)
}

func (m *paymentRepoMock) FindByFilter(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	args := m.Called(ctx, filter)
	payments, _ := args.Get(0).([]*entity.Payment)
	return payments, args.Error(1)
}

func (m *paymentRepoMock) Save(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *paymentRepoMock) Remove(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}
