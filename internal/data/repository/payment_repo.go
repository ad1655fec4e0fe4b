package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payment-api/internal/data/entity"
	"payment-api/internal/data/schema"
	"payment-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PaymentFilter narrows a payment listing; nil fields are ignored.
type PaymentFilter struct {
	MethodID   *int64
	CustomerID *int64
	BasketID   *int64
}

type PaymentRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	FindByFilter(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)
	Save(ctx context.Context, payment *entity.Payment) error
	Remove(ctx context.Context, payment *entity.Payment) error
}

type paymentRepository struct {
	db    database.PgxIface
	table schema.Table
	log   *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:    db,
		table: schema.Payments,
		log:   log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	query := r.table.SelectSQL() + " WHERE id = $1"

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.MethodID,
		&payment.CustomerID,
		&payment.BasketID,
		&payment.Sum,
		&payment.IsFinalized,
		&payment.TransactionDate,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.Int64("payment_id", id),
		)
		return nil, fmt.Errorf("find payment by ID %d: %w", id, err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	return r.FindByFilter(ctx, PaymentFilter{})
}

func (r *paymentRepository) FindByFilter(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error) {
	// Build query dengan optional filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(r.table.SelectSQL())

	var conditions []string
	args := []interface{}{}

	for _, f := range []struct {
		column string
		value  *int64
	}{
		{"method_id", filter.MethodID},
		{"customer_id", filter.CustomerID},
		{"basket_id", filter.BasketID},
	} {
		if f.value == nil {
			continue
		}
		args = append(args, *f.value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", f.column, len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find payments", zap.Error(err))
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.MethodID,
			&payment.CustomerID,
			&payment.BasketID,
			&payment.Sum,
			&payment.IsFinalized,
			&payment.TransactionDate,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

// Save inserts a new payment, assigning its ID, or updates an existing one.
func (r *paymentRepository) Save(ctx context.Context, payment *entity.Payment) error {
	if payment.IsNew() {
		err := r.db.QueryRow(ctx, r.table.InsertSQL(),
			payment.MethodID,
			payment.CustomerID,
			payment.BasketID,
			payment.Sum,
			payment.IsFinalized,
			payment.TransactionDate,
		).Scan(&payment.ID)

		if err != nil {
			r.log.Error("Failed to create payment",
				zap.Error(err),
				zap.Int64("method_id", payment.MethodID),
				zap.Int64("basket_id", payment.BasketID),
			)
			return fmt.Errorf("create payment for basket %d: %w", payment.BasketID, err)
		}
		return nil
	}

	result, err := r.db.Exec(ctx, r.table.UpdateSQL(),
		payment.ID,
		payment.MethodID,
		payment.CustomerID,
		payment.BasketID,
		payment.Sum,
		payment.IsFinalized,
		payment.TransactionDate,
	)
	if err != nil {
		r.log.Error("Failed to update payment",
			zap.Error(err),
			zap.Int64("payment_id", payment.ID),
		)
		return fmt.Errorf("update payment %d: %w", payment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update payment %d: %w", payment.ID, ErrNotFound)
	}

	return nil
}

func (r *paymentRepository) Remove(ctx context.Context, payment *entity.Payment) error {
	result, err := r.db.Exec(ctx, r.table.DeleteSQL(), payment.ID)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.Int64("payment_id", payment.ID),
		)
		return fmt.Errorf("delete payment %d: %w", payment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete payment %d: %w", payment.ID, ErrNotFound)
	}

	r.log.Info("Payment deleted", zap.Int64("payment_id", payment.ID))
	return nil
}
