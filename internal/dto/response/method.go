package response

import "payment-api/internal/data/entity"

type MethodResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func MethodToResponse(method *entity.PaymentMethod) MethodResponse {
	return MethodResponse{
		ID:       method.ID,
		Name:     method.Name,
		IsActive: method.IsActive,
	}
}
