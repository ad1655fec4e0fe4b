package usecase

import (
	"errors"
	"time"

	"payment-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Method  MethodService
	Payment PaymentService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Method:  NewMethodService(repo.PaymentMethod, log),
		Payment: NewPaymentService(repo.Payment, time.Now, log),
	}
}

func isClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}
