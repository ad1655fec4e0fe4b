package wire

import (
	"payment-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Route("/v1/payments", func(r chi.Router) {
		r.Get("/", paymentHandler.GetPayments)
		r.Post("/", paymentHandler.CreatePayment)

		r.Get("/finalize/{id}", paymentHandler.FinalizePayment)

		r.Get("/{id}", paymentHandler.GetPaymentByID)
		r.Delete("/{id}", paymentHandler.DeletePayment)
	})
}
