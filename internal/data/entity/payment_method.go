package entity

type PaymentMethod struct {
	Base
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}

// SetActive switches the activation flag and reports whether it changed.
func (m *PaymentMethod) SetActive(active bool) bool {
	if m.IsActive == active {
		return false
	}
	m.IsActive = active
	return true
}
