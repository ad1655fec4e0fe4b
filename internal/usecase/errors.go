package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"payment-api/pkg/utils"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// NotFoundError carries the problem document returned to the client.
type NotFoundError struct {
	Resource string
	Problem  utils.Problem
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Problem.Detail)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ProblemFactory builds the not-found error for one resource type.
type ProblemFactory func(id int64) *NotFoundError

func methodNotFound(id int64) *NotFoundError {
	return &NotFoundError{
		Resource: "payment method",
		Problem: utils.Problem{
			Type:     "/errors/no_methods_found_upon_update",
			Title:    "List of methods",
			Status:   http.StatusNotFound,
			Detail:   strconv.FormatInt(id, 10),
			Instance: "/v1/methods/{id}",
		},
	}
}

func paymentNotFound(id int64) *NotFoundError {
	return &NotFoundError{
		Resource: "payment",
		Problem: utils.Problem{
			Type:     "/errors/no_payments_found_upon_update",
			Title:    "List of payments",
			Status:   http.StatusNotFound,
			Detail:   strconv.FormatInt(id, 10),
			Instance: "/v1/payments/{id}",
		},
	}
}
