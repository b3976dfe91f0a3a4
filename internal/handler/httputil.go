package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/matthewbaird/showcase/internal/listing"
	"github.com/matthewbaird/showcase/internal/portfolio"
	"github.com/matthewbaird/showcase/internal/resume"
	"github.com/matthewbaird/showcase/internal/session"
	"go.uber.org/zap"
)

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("writeJSON encode error", zap.Error(err))
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// writeValidation writes a 422 with the per-field messages.
func writeValidation(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"code":   "VALIDATION_ERROR",
		"errors": errs,
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// parseLimit reads the limit query parameter, falling back to def.
func parseLimit(r *http.Request, def, max int) int {
	n := def
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			n = l
		}
	}
	if n > max {
		n = max
	}
	return n
}

// errorToHTTP maps domain errors to appropriate HTTP responses.
func errorToHTTP(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrNotFound), errors.Is(err, portfolio.ErrNotFound), errors.Is(err, resume.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, portfolio.ErrNotFinalStep):
		writeError(w, http.StatusConflict, "NOT_FINAL_STEP", err.Error())
	case errors.Is(err, session.ErrSubmitting):
		writeError(w, http.StatusConflict, "SUBMIT_IN_PROGRESS", err.Error())
	case errors.Is(err, portfolio.ErrUnknownUpdate), errors.Is(err, resume.ErrUnknownUpdate):
		writeError(w, http.StatusBadRequest, "UNKNOWN_UPDATE", err.Error())
	default:
		zap.L().Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
