package entity

// Base carries the surrogate key assigned by storage on first save.
type Base struct {
	ID int64 `db:"id"`
}

// IsNew reports whether the record has not been persisted yet.
func (b Base) IsNew() bool {
	return b.ID == 0
}
