package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"payment-api/internal/data/entity"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var paymentColumns = []string{"id", "method_id", "customer_id", "basket_id", "sum", "is_finalized", "transaction_date"}

func newPaymentRepo(t *testing.T) (PaymentRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPaymentRepository(mock, zap.NewNop()), mock
}

func TestPaymentRepository_FindByID(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, method_id, customer_id, basket_id, sum, is_finalized, transaction_date FROM payments WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows(paymentColumns).AddRow(int64(8), int64(1), int64(20), int64(300), 49.99, false, date))

	got, err := repo.FindByID(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(300), got.BasketID)
	assert.Equal(t, 49.99, got.Sum)
	assert.True(t, got.TransactionDate.Equal(date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_FindByFilter(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	method, basket := int64(2), int64(77)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE method_id = $1 AND basket_id = $2 ORDER BY id")).
		WithArgs(int64(2), int64(77)).
		WillReturnRows(pgxmock.NewRows(paymentColumns).
			AddRow(int64(1), int64(2), int64(5), int64(77), 10.0, true, time.Now()))

	got, err := repo.FindByFilter(context.Background(), PaymentFilter{MethodID: &method, BasketID: &basket})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_FindAll_NoFilter(t *testing.T) {
	repo, mock := newPaymentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, method_id, customer_id, basket_id, sum, is_finalized, transaction_date FROM payments ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(paymentColumns))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Save_Insert(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments (method_id, customer_id, basket_id, sum, is_finalized, transaction_date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id")).
		WithArgs(int64(1), int64(20), int64(300), 49.99, false, date).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	payment := &entity.Payment{MethodID: 1, CustomerID: 20, BasketID: 300, Sum: 49.99, TransactionDate: date}
	require.NoError(t, repo.Save(context.Background(), payment))
	assert.Equal(t, int64(42), payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Save_Update(t *testing.T) {
	repo, mock := newPaymentRepo(t)
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET method_id = $2")).
		WithArgs(int64(42), int64(1), int64(20), int64(300), 49.99, true, date).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	payment := &entity.Payment{Base: entity.Base{ID: 42}, MethodID: 1, CustomerID: 20, BasketID: 300, Sum: 49.99, IsFinalized: true, TransactionDate: date}
	assert.NoError(t, repo.Save(context.Background(), payment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Remove_Missing(t *testing.T) {
	repo, mock := newPaymentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Remove(context.Background(), &entity.Payment{Base: entity.Base{ID: 9}})
	assert.ErrorIs(t, err, ErrNotFound)
}
