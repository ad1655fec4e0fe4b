package wire

import (
	"payment-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMethod(r chi.Router, methodHandler *adaptor.MethodHandler) {
	r.Route("/v1/methods", func(r chi.Router) {
		r.Get("/", methodHandler.GetMethods)
		r.Post("/", methodHandler.CreateMethod)

		// Activation toggles are GET for compatibility with existing checkout clients
		r.Get("/deactivate/{id}", methodHandler.DeactivateMethod)
		r.Get("/reactivate/{id}", methodHandler.ReactivateMethod)

		r.Get("/{id}", methodHandler.GetMethodByID)
		r.Put("/{id}", methodHandler.UpdateMethod)
		r.Delete("/{id}", methodHandler.DeleteMethod)
	})
}
