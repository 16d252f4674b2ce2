package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"github.com/shopfront/catalog-service/internal/app/catalog/domain"
)

type errorResponse struct {
	Error  string             `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// writeError maps engine errors to HTTP responses. Errors pass through
// unmodified semantics: validation failures are the caller's to fix, store
// unavailability is transient, and anything else is an internal failure.
// Empty results never reach this path; they are successful responses.
func (h *CatalogHandler) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid filter parameters",
			Fields: verr.Fields,
		})

	case errors.Is(err, domain.ErrProductNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})

	case storeUnavailable(err):
		h.logger.Warn("catalog store unavailable", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "catalog temporarily unavailable"})

	default:
		h.logger.Error("catalog query failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// storeUnavailable reports whether err is a transient store failure or a
// caller-driven cancellation/timeout surfacing from an in-flight store call.
func storeUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	switch spanner.ErrCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.ResourceExhausted:
		return true
	}
	return false
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}
