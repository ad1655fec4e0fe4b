package adaptor

import (
	"net/http"

	"payment-api/internal/dto/request"
	"payment-api/internal/usecase"
	"payment-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MethodHandler struct {
	service usecase.MethodService
	log     *zap.Logger
}

func NewMethodHandler(service usecase.MethodService, log *zap.Logger) *MethodHandler {
	return &MethodHandler{
		service: service,
		log:     log.With(zap.String("handler", "method")),
	}
}

// GetMethods handles GET /v1/methods
func (h *MethodHandler) GetMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListMethods(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get methods")
		return
	}

	utils.ResponseSuccess(w, "success", methods)
}

// GetMethodByID handles GET /v1/methods/{id}
func (h *MethodHandler) GetMethodByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.methodID(w, r)
	if !ok {
		return
	}

	method, err := h.service.GetMethod(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get method")
		return
	}

	utils.ResponseSuccess(w, "success", method)
}

// CreateMethod handles POST /v1/methods
func (h *MethodHandler) CreateMethod(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeMethodRequest(w, r)
	if !ok {
		return
	}

	method, err := h.service.CreateMethod(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create method")
		return
	}

	utils.ResponseSuccess(w, "success", method)
}

// UpdateMethod handles PUT /v1/methods/{id}
func (h *MethodHandler) UpdateMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := h.methodID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeMethodRequest(w, r)
	if !ok {
		return
	}

	method, err := h.service.UpdateMethod(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update method")
		return
	}

	utils.ResponseSuccess(w, "success", method)
}

// DeactivateMethod handles GET /v1/methods/deactivate/{id}
func (h *MethodHandler) DeactivateMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := h.methodID(w, r)
	if !ok {
		return
	}

	method, err := h.service.DeactivateMethod(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "deactivate method")
		return
	}

	utils.ResponseSuccess(w, "success", method)
}

// ReactivateMethod handles GET /v1/methods/reactivate/{id}
func (h *MethodHandler) ReactivateMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := h.methodID(w, r)
	if !ok {
		return
	}

	method, err := h.service.ReactivateMethod(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "reactivate method")
		return
	}

	utils.ResponseSuccess(w, "success", method)
}

// DeleteMethod handles DELETE /v1/methods/{id}
func (h *MethodHandler) DeleteMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := h.methodID(w, r)
	if !ok {
		return
	}

	method, err := h.service.DeleteMethod(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete method")
		return
	}

	utils.ResponseSuccess(w, "success", method)
}

func (h *MethodHandler) methodID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid method ID", nil)
		return 0, false
	}
	return id, true
}

func (h *MethodHandler) decodeMethodRequest(w http.ResponseWriter, r *http.Request) (*request.MethodRequest, bool) {
	var req request.MethodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return &req, true
}
