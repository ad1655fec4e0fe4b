package response

import "payment-api/internal/data/entity"

type PaymentResponse struct {
	ID              int64   `json:"id"`
	MethodID        int64   `json:"method_id"`
	CustomerID      int64   `json:"customer_id"`
	BasketID        int64   `json:"basket_id"`
	Sum             float64 `json:"sum"`
	IsFinalized     bool    `json:"is_finalized"`
	TransactionDate string  `json:"transaction_date"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              payment.ID,
		MethodID:        payment.MethodID,
		CustomerID:      payment.CustomerID,
		BasketID:        payment.BasketID,
		Sum:             payment.Sum,
		IsFinalized:     payment.IsFinalized,
		TransactionDate: payment.TransactionDate.Format(entity.DateLayout),
	}
}
