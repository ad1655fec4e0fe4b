package wire

import (
	"payment-api/internal/adaptor"
	"payment-api/internal/data/repository"
	"payment-api/internal/usecase"
	"payment-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, db adaptor.Pinger, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, db, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireMethod(r, handler.Method)
	wirePayment(r, handler.Payment)

	r.Get("/health", handler.Health.Check)

	return r
}
