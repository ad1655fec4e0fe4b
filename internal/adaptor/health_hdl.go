package adaptor

import (
	"context"
	"net/http"
	"time"

	"payment-api/pkg/utils"

	"go.uber.org/zap"
)

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	log     *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: 2 * time.Second,
		log:     log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("Database ping failed", zap.Error(err))
		utils.ResponseUnavailable(w, "database unavailable")
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}
