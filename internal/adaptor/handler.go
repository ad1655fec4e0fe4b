package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"payment-api/internal/usecase"
	"payment-api/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid json")

type Handler struct {
	Method  *MethodHandler
	Payment *PaymentHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Method:  NewMethodHandler(service.Method, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Health:  NewHealthHandler(db, log),
	}
}

// decodeJSON reads exactly one JSON document from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return errInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errInvalidJSON
	}
	return nil
}

// handleServiceError maps usecase errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var notFound *usecase.NotFoundError

	switch {
	case errors.As(err, &notFound):
		utils.ResponseProblem(w, notFound.Problem)

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
