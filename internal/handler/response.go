package handler

import (
	"net/http"
	"strconv"
	"strings"

	"school-api/internal/middleware"
)

func writeSuccess(w http.ResponseWriter, status int, data any) {
	middleware.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, err error) {
	middleware.WriteError(w, err)
}

// parseIntOrDefault returns fallback for an absent value and ok=false for one
// that is present but not an integer.
func parseIntOrDefault(raw string, fallback int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
