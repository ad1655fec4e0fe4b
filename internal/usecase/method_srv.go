package usecase

import (
	"context"
	"fmt"

	"payment-api/internal/data/entity"
	"payment-api/internal/data/repository"
	"payment-api/internal/dto/request"
	"payment-api/internal/dto/response"
	"payment-api/pkg/utils"

	"go.uber.org/zap"
)

type MethodService interface {
	ListMethods(ctx context.Context) ([]response.MethodResponse, error)
	GetMethod(ctx context.Context, id int64) (*response.MethodResponse, error)
	CreateMethod(ctx context.Context, req *request.MethodRequest) (*response.MethodResponse, error)
	UpdateMethod(ctx context.Context, id int64, req *request.MethodRequest) (*response.MethodResponse, error)
	DeactivateMethod(ctx context.Context, id int64) (*response.MethodResponse, error)
	ReactivateMethod(ctx context.Context, id int64) (*response.MethodResponse, error)
	DeleteMethod(ctx context.Context, id int64) (*response.MethodResponse, error)
}

type methodService struct {
	methods *Resource[entity.PaymentMethod]
	log     *zap.Logger
}

func NewMethodService(repo repository.PaymentMethodRepository, log *zap.Logger) MethodService {
	log = log.With(zap.String("service", "method"))
	return &methodService{
		methods: NewResource[entity.PaymentMethod](repo, methodNotFound, log),
		log:     log,
	}
}

func (s *methodService) ListMethods(ctx context.Context) ([]response.MethodResponse, error) {
	methods, err := s.methods.List(ctx)
	if err != nil {
		s.log.Error("Failed to get payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	methodResponses := make([]response.MethodResponse, len(methods))
	for i, method := range methods {
		methodResponses[i] = response.MethodToResponse(method)
	}

	s.log.Debug("Payment methods retrieved", zap.Int("count", len(methods)))

	return methodResponses, nil
}

func (s *methodService) GetMethod(ctx context.Context, id int64) (*response.MethodResponse, error) {
	method, err := s.methods.FindOr404(ctx, id)
	if err != nil {
		return nil, err
	}

	methodResp := response.MethodToResponse(method)
	return &methodResp, nil
}

func (s *methodService) CreateMethod(ctx context.Context, req *request.MethodRequest) (*response.MethodResponse, error) {
	method, err := s.methods.Create(ctx, func() (*entity.PaymentMethod, error) {
		name, err := sanitizeMethodName(req.Name)
		if err != nil {
			return nil, err
		}
		return &entity.PaymentMethod{Name: name, IsActive: true}, nil
	})
	if err != nil {
		return nil, s.fail("create payment method", err)
	}

	s.log.Info("Payment method created",
		zap.Int64("method_id", method.ID),
		zap.String("name", method.Name),
	)

	methodResp := response.MethodToResponse(method)
	return &methodResp, nil
}

func (s *methodService) UpdateMethod(ctx context.Context, id int64, req *request.MethodRequest) (*response.MethodResponse, error) {
	name, err := sanitizeMethodName(req.Name)
	if err != nil {
		return nil, err
	}

	method, err := s.methods.Mutate(ctx, id, func(method *entity.PaymentMethod) (bool, error) {
		if method.Name == name {
			return false, nil
		}
		method.Name = name
		return true, nil
	})
	if err != nil {
		return nil, s.fail("update payment method", err, zap.Int64("method_id", id))
	}

	s.log.Info("Payment method updated",
		zap.Int64("method_id", id),
		zap.String("name", method.Name),
	)

	methodResp := response.MethodToResponse(method)
	return &methodResp, nil
}

func (s *methodService) DeactivateMethod(ctx context.Context, id int64) (*response.MethodResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *methodService) ReactivateMethod(ctx context.Context, id int64) (*response.MethodResponse, error) {
	return s.setActive(ctx, id, true)
}

// setActive is idempotent: a method already in the target state is returned unchanged.
func (s *methodService) setActive(ctx context.Context, id int64, active bool) (*response.MethodResponse, error) {
	var changed bool
	method, err := s.methods.Mutate(ctx, id, func(method *entity.PaymentMethod) (bool, error) {
		changed = method.SetActive(active)
		return changed, nil
	})
	if err != nil {
		return nil, s.fail("set payment method activity", err,
			zap.Int64("method_id", id),
			zap.Bool("active", active),
		)
	}

	s.log.Info("Payment method activity set",
		zap.Int64("method_id", id),
		zap.Bool("active", active),
		zap.Bool("was_updated", changed),
	)

	methodResp := response.MethodToResponse(method)
	return &methodResp, nil
}

func (s *methodService) DeleteMethod(ctx context.Context, id int64) (*response.MethodResponse, error) {
	method, err := s.methods.Remove(ctx, id)
	if err != nil {
		return nil, s.fail("delete payment method", err, zap.Int64("method_id", id))
	}

	s.log.Info("Payment method deleted",
		zap.Int64("method_id", id),
		zap.String("name", method.Name),
	)

	methodResp := response.MethodToResponse(method)
	return &methodResp, nil
}

// fail logs unexpected errors and passes client errors through untouched.
func (s *methodService) fail(operation string, err error, fields ...zap.Field) error {
	if isClientError(err) {
		return err
	}
	s.log.Error("Failed to "+operation, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", operation, err)
}

func sanitizeMethodName(raw string) (string, error) {
	name := utils.SanitizeName(raw)
	if name == "" {
		return "", fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	return name, nil
}
