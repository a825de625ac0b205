package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"school-api/internal/model"
)

const defaultRequestTimeout = 30 * time.Second

// Timeout bounds API handlers. http.TimeoutHandler answers 503 with the
// envelope below once the deadline passes and cancels the request context,
// which also aborts any in-flight query.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	body, _ := json.Marshal(model.ErrorResponse{
		Success: false,
		Error:   &model.APIError{Code: "REQUEST_TIMEOUT", Message: "request timed out"},
	})

	return func(next http.Handler) http.Handler {
		limited := http.TimeoutHandler(next, timeout, string(body))
		// TimeoutHandler writes its message without a Content-Type. Handlers
		// that finish in time overwrite this with their own.
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			limited.ServeHTTP(w, r)
		})
	}
}
