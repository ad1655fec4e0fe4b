package usecase

import (
	"context"
	"fmt"
	"time"

	"payment-api/internal/data/entity"
	"payment-api/internal/data/repository"
	"payment-api/internal/dto/request"
	"payment-api/internal/dto/response"

	"go.uber.org/zap"
)

type PaymentService interface {
	ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]response.PaymentResponse, error)
	GetPayment(ctx context.Context, id int64) (*response.PaymentResponse, error)
	RecordPayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error)
	FinalizePayment(ctx context.Context, id int64) (*response.PaymentResponse, error)
	DeletePayment(ctx context.Context, id int64) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	payments *Resource[entity.Payment]
	now      func() time.Time
	log      *zap.Logger
}

func NewPaymentService(repo repository.PaymentRepository, now func() time.Time, log *zap.Logger) PaymentService {
	log = log.With(zap.String("service", "payment"))
	return &paymentService{
		repo:     repo,
		payments: NewResource[entity.Payment](repo, paymentNotFound, log),
		now:      now,
		log:      log,
	}
}

func (s *paymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]response.PaymentResponse, error) {
	var (
		payments []*entity.Payment
		err      error
	)
	if filter == (repository.PaymentFilter{}) {
		payments, err = s.payments.List(ctx)
	} else {
		payments, err = s.repo.FindByFilter(ctx, filter)
	}
	if err != nil {
		s.log.Error("Failed to get payments",
			zap.Error(err),
			zap.Int64p("method_id", filter.MethodID),
			zap.Int64p("customer_id", filter.CustomerID),
			zap.Int64p("basket_id", filter.BasketID),
		)
		return nil, fmt.Errorf("get payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return paymentResponses, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*response.PaymentResponse, error) {
	payment, err := s.payments.FindOr404(ctx, id)
	if err != nil {
		return nil, err
	}

	paymentResp := response.PaymentToResponse(payment)
	return &paymentResp, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	payment, err := s.payments.Create(ctx, func() (*entity.Payment, error) {
		date := entity.TruncateDate(s.now().UTC())
		if req.TransactionDate != "" {
			parsed, err := time.Parse(entity.DateLayout, req.TransactionDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid transaction date %s", ErrValidation, req.TransactionDate)
			}
			date = parsed
		}

		if req.Sum <= 0 {
			return nil, fmt.Errorf("%w: sum must be positive", ErrValidation)
		}

		return &entity.Payment{
			MethodID:        req.MethodID,
			CustomerID:      req.CustomerID,
			BasketID:        req.BasketID,
			Sum:             req.Sum,
			IsFinalized:     req.IsFinalized,
			TransactionDate: date,
		}, nil
	})
	if err != nil {
		return nil, s.fail("record payment", err, zap.Int64("basket_id", req.BasketID))
	}

	s.log.Info("Payment recorded",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("method_id", payment.MethodID),
		zap.Int64("customer_id", payment.CustomerID),
		zap.Int64("basket_id", payment.BasketID),
		zap.Bool("is_finalized", payment.IsFinalized),
	)

	paymentResp := response.PaymentToResponse(payment)
	return &paymentResp, nil
}

// FinalizePayment is idempotent.
func (s *paymentService) FinalizePayment(ctx context.Context, id int64) (*response.PaymentResponse, error) {
	payment, err := s.payments.Mutate(ctx, id, func(payment *entity.Payment) (bool, error) {
		return payment.Finalize(), nil
	})
	if err != nil {
		return nil, s.fail("finalize payment", err, zap.Int64("payment_id", id))
	}

	s.log.Info("Payment finalized", zap.Int64("payment_id", id))

	paymentResp := response.PaymentToResponse(payment)
	return &paymentResp, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id int64) (*response.PaymentResponse, error) {
	payment, err := s.payments.Remove(ctx, id)
	if err != nil {
		return nil, s.fail("delete payment", err, zap.Int64("payment_id", id))
	}

	s.log.Info("Payment deleted", zap.Int64("payment_id", id))

	paymentResp := response.PaymentToResponse(payment)
	return &paymentResp, nil
}

func (s *paymentService) fail(operation string, err error, fields ...zap.Field) error {
	if isClientError(err) {
		return err
	}
	s.log.Error("Failed to "+operation, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", operation, err)
}
