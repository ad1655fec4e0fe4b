package schema

import (
	"fmt"
	"strings"
)

// Column describes one stored field of a table.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
	Default    string
}

// Table is the explicit mapping between a record type and its storage.
type Table struct {
	Name    string
	Columns []Column
}

var PaymentMethods = Table{
	Name: "payment_methods",
	Columns: []Column{
		{Name: "id", Type: "BIGSERIAL", PrimaryKey: true},
		{Name: "name", Type: "TEXT"},
		{Name: "is_active", Type: "BOOLEAN", Default: "TRUE"},
	},
}

var Payments = Table{
	Name: "payments",
	Columns: []Column{
		{Name: "id", Type: "BIGSERIAL", PrimaryKey: true},
		{Name: "method_id", Type: "BIGINT"},
		{Name: "customer_id", Type: "BIGINT"},
		{Name: "basket_id", Type: "BIGINT"},
		{Name: "sum", Type: "DOUBLE PRECISION"},
		{Name: "is_finalized", Type: "BOOLEAN", Default: "FALSE"},
		{Name: "transaction_date", Type: "DATE"},
	},
}

// All lists every table in creation order.
func All() []Table {
	return []Table{PaymentMethods, Payments}
}

// Key returns the primary key column name.
func (t Table) Key() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// Select returns every column name, key first, joined for a SELECT list.
func (t Table) Select() string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// Writable returns the non-key columns in declaration order.
func (t Table) Writable() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !c.PrimaryKey {
			names = append(names, c.Name)
		}
	}
	return names
}

// InsertSQL builds an INSERT over the writable columns that returns the new key.
func (t Table) InsertSQL() string {
	cols := t.Writable()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.Key())
}

// UpdateSQL builds an UPDATE of every writable column; the key is bound to $1.
func (t Table) UpdateSQL() string {
	cols := t.Writable()
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", t.Name, strings.Join(sets, ", "), t.Key())
}

// SelectSQL builds the base SELECT of all columns.
func (t Table) SelectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", t.Select(), t.Name)
}

// DeleteSQL builds a DELETE by key.
func (t Table) DeleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.Key())
}

// CreateSQL builds an idempotent CREATE TABLE statement.
func (t Table) CreateSQL() string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		def := c.Name + " " + c.Type
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		} else if !c.Nullable {
			def += " NOT NULL"
		}
		if c.Default != "" {
			def += " DEFAULT " + c.Default
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(defs, ",\n\t"))
}
