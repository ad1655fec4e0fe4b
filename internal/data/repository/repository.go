package repository

import (
	"errors"

	"payment-api/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a write targets a row that no longer exists.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	PaymentMethod PaymentMethodRepository
	Payment       PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		PaymentMethod: NewPaymentMethodRepository(db, log),
		Payment:       NewPaymentRepository(db, log),
	}
}
