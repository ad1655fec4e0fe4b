package repository

import (
	"context"
	"errors"
	"fmt"

	"payment-api/internal/data/entity"
	"payment-api/internal/data/schema"
	"payment-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	FindAll(ctx context.Context) ([]*entity.PaymentMethod, error)
	Save(ctx context.Context, paymentMethod *entity.PaymentMethod) error
	Remove(ctx context.Context, paymentMethod *entity.PaymentMethod) error
}

type paymentMethodRepository struct {
	db    database.PgxIface
	table schema.Table
	log   *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:    db,
		table: schema.PaymentMethods,
		log:   log.With(zap.String("repository", "payment_method")),
	}
}

func (r *paymentMethodRepository) FindByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	query := r.table.SelectSQL() + " WHERE id = $1"

	var paymentMethod entity.PaymentMethod
	err := r.db.QueryRow(ctx, query, id).Scan(
		&paymentMethod.ID,
		&paymentMethod.Name,
		&paymentMethod.IsActive,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment method by ID",
			zap.Error(err),
			zap.Int64("payment_method_id", id),
		)
		return nil, fmt.Errorf("find payment method by ID %d: %w", id, err)
	}

	return &paymentMethod, nil
}

func (r *paymentMethodRepository) FindAll(ctx context.Context) ([]*entity.PaymentMethod, error) {
	query := r.table.SelectSQL() + " ORDER BY id"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all payment methods", zap.Error(err))
		return nil, fmt.Errorf("find all payment methods: %w", err)
	}
	defer rows.Close()

	paymentMethods := make([]*entity.PaymentMethod, 0)
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name, &pm.IsActive); err != nil {
			r.log.Error("Failed to scan payment method row", zap.Error(err))
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		paymentMethods = append(paymentMethods, &pm)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment method rows: %w", err)
	}

	return paymentMethods, nil
}

// Save inserts a new payment method, assigning its ID, or updates an existing one.
func (r *paymentMethodRepository) Save(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	if paymentMethod.IsNew() {
		err := r.db.QueryRow(ctx, r.table.InsertSQL(),
			paymentMethod.Name,
			paymentMethod.IsActive,
		).Scan(&paymentMethod.ID)

		if err != nil {
			r.log.Error("Failed to create payment method",
				zap.Error(err),
				zap.String("name", paymentMethod.Name),
			)
			return fmt.Errorf("create payment method %s: %w", paymentMethod.Name, err)
		}
		return nil
	}

	result, err := r.db.Exec(ctx, r.table.UpdateSQL(),
		paymentMethod.ID,
		paymentMethod.Name,
		paymentMethod.IsActive,
	)
	if err != nil {
		r.log.Error("Failed to update payment method",
			zap.Error(err),
			zap.Int64("payment_method_id", paymentMethod.ID),
		)
		return fmt.Errorf("update payment method %d: %w", paymentMethod.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update payment method %d: %w", paymentMethod.ID, ErrNotFound)
	}

	return nil
}

func (r *paymentMethodRepository) Remove(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	result, err := r.db.Exec(ctx, r.table.DeleteSQL(), paymentMethod.ID)
	if err != nil {
		r.log.Error("Failed to delete payment method",
			zap.Error(err),
			zap.Int64("payment_method_id", paymentMethod.ID),
		)
		return fmt.Errorf("delete payment method %d: %w", paymentMethod.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete payment method %d: %w", paymentMethod.ID, ErrNotFound)
	}

	r.log.Info("Payment method deleted", zap.Int64("payment_method_id", paymentMethod.ID))
	return nil
}
