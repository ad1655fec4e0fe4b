package middleware

import (
	"net/http"

	"payment-api/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates an inbound X-Request-ID or assigns a new one.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = utils.NewRequestID()
			}

			w.Header().Set(RequestIDHeader, requestID)
			ctx := utils.SetRequestIDContext(r.Context(), requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
