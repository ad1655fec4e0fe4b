package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"payment-api/internal/data/entity"
	"payment-api/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestResource_FindOr404LogsProblem(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := new(methodRepoMock)
	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	res := NewResource[entity.PaymentMethod](repo, methodNotFound, zap.New(core))
	_, err := res.FindOr404(context.Background(), 42)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "42", nf.Problem.Detail)

	entries := logs.FilterMessage("No payment method found").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/errors/no_methods_found_upon_update", fields["type"])
	assert.Equal(t, int64(404), fields["status"])
	assert.Equal(t, "/v1/methods/{id}", fields["instance"])
}

func TestResource_MutateSkipsSaveWhenUnchanged(t *testing.T) {
	repo := new(methodRepoMock)
	repo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.PaymentMethod{Base: entity.Base{ID: 1}, Name: "Visa", IsActive: true}, nil)

	res := NewResource[entity.PaymentMethod](repo, methodNotFound, zap.NewNop())
	got, err := res.Mutate(context.Background(), 1, func(m *entity.PaymentMethod) (bool, error) {
		return m.SetActive(true), nil
	})

	require.NoError(t, err)
	assert.True(t, got.IsActive)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestResource_MutateRowVanished(t *testing.T) {
	repo := new(methodRepoMock)
	repo.On("FindByID", mock.Anything, int64(3)).
		Return(&entity.PaymentMethod{Base: entity.Base{ID: 3}, Name: "Cash", IsActive: true}, nil)
	repo.On("Save", mock.Anything, mock.Anything).
		Return(fmt.Errorf("update payment method 3: %w", repository.ErrNotFound))

	res := NewResource[entity.PaymentMethod](repo, methodNotFound, zap.NewNop())
	_, err := res.Mutate(context.Background(), 3, func(m *entity.PaymentMethod) (bool, error) {
		return m.SetActive(false), nil
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "3", nf.Problem.Detail)
}

func TestResource_MutateChangeError(t *testing.T) {
	repo := new(methodRepoMock)
	repo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.PaymentMethod{Base: entity.Base{ID: 1}}, nil)

	res := NewResource[entity.PaymentMethod](repo, methodNotFound, zap.NewNop())
	_, err := res.Mutate(context.Background(), 1, func(*entity.PaymentMethod) (bool, error) {
		return false, ErrValidation
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestResource_CreateWrapsStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := new(paymentRepoMock)
	repo.On("Save", mock.Anything, mock.Anything).Return(boom)

	res := NewResource[entity.Payment](repo, paymentNotFound, zap.NewNop())
	_, err := res.Create(context.Background(), func() (*entity.Payment, error) {
		return &entity.Payment{Sum: 1}, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestResource_RemoveReturnsRemovedRecord(t *testing.T) {
	payment := &entity.Payment{Base: entity.Base{ID: 8}, Sum: 10}
	repo := new(paymentRepoMock)
	repo.On("FindByID", mock.Anything, int64(8)).Return(payment, nil)
	repo.On("Remove", mock.Anything, payment).Return(nil)

	res := NewResource[entity.Payment](repo, paymentNotFound, zap.NewNop())
	got, err := res.Remove(context.Background(), 8)

	require.NoError(t, err)
	assert.Same(t, payment, got)
	repo.AssertExpectations(t)
}
