package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodsStatements(t *testing.T) {
	assert.Equal(t, "id", PaymentMethods.Key())
	assert.Equal(t, "id, name, is_active", PaymentMethods.Select())
	assert.Equal(t, []string{"name", "is_active"}, PaymentMethods.Writable())
	assert.Equal(t,
		"INSERT INTO payment_methods (name, is_active) VALUES ($1, $2) RETURNING id",
		PaymentMethods.InsertSQL())
	assert.Equal(t,
		"UPDATE payment_methods SET name = $2, is_active = $3 WHERE id = $1",
		PaymentMethods.UpdateSQL())
	assert.Equal(t, "SELECT id, name, is_active FROM payment_methods", PaymentMethods.SelectSQL())
	assert.Equal(t, "DELETE FROM payment_methods WHERE id = $1", PaymentMethods.DeleteSQL())
}

func TestCreateSQL(t *testing.T) {
	want := "CREATE TABLE IF NOT EXISTS payment_methods (\n" +
		"\tid BIGSERIAL PRIMARY KEY,\n" +
		"\tname TEXT NOT NULL,\n" +
		"\tis_active BOOLEAN NOT NULL DEFAULT TRUE\n" +
		")"
	assert.Equal(t, want, PaymentMethods.CreateSQL())
}

func TestPaymentsAreNotNullable(t *testing.T) {
	for _, c := range Payments.Columns {
		assert.False(t, c.Nullable, c.Name)
	}
	assert.Len(t, Payments.Writable(), 6)
	assert.Equal(t,
		"INSERT INTO payments (method_id, customer_id, basket_id, sum, is_finalized, transaction_date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		Payments.InsertSQL())
}

func TestAllOrder(t *testing.T) {
	tables := All()
	if assert.Len(t, tables, 2) {
		assert.Equal(t, "payment_methods", tables[0].Name)
		assert.Equal(t, "payments", tables[1].Name)
	}
}
