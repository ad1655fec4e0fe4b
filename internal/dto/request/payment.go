package request

type PaymentRequest struct {
	MethodID        int64   `json:"method_id" validate:"required,gt=0"`
	CustomerID      int64   `json:"customer_id" validate:"required,gt=0"`
	BasketID        int64   `json:"basket_id" validate:"required,gt=0"`
	Sum             float64 `json:"sum" validate:"gt=0"`
	IsFinalized     bool    `json:"is_finalized"`
	TransactionDate string  `json:"transaction_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
