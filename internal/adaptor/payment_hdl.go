package adaptor

import (
	"net/http"

	"payment-api/internal/data/repository"
	"payment-api/internal/dto/request"
	"payment-api/internal/usecase"
	"payment-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// GetPayments handles GET /v1/payments
// Optional filters: ?method_id=&customer_id=&basket_id=
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.PaymentFilter
	for key, dst := range map[string]**int64{
		"method_id":   &filter.MethodID,
		"customer_id": &filter.CustomerID,
		"basket_id":   &filter.BasketID,
	} {
		value, err := utils.ParseOptionalID(query.Get(key))
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid "+key, nil)
			return
		}
		*dst = value
	}

	payments, err := h.service.ListPayments(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetPaymentByID handles GET /v1/payments/{id}
func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	payment, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// CreatePayment handles POST /v1/payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// FinalizePayment handles GET /v1/payments/finalize/{id}
func (h *PaymentHandler) FinalizePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	payment, err := h.service.FinalizePayment(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "finalize payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// DeletePayment handles DELETE /v1/payments/{id}
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.paymentID(w, r)
	if !ok {
		return
	}

	payment, err := h.service.DeletePayment(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

func (h *PaymentHandler) paymentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment ID", nil)
		return 0, false
	}
	return id, true
}
