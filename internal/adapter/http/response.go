package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrArithmeticOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTransferFailure):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrNotCampaign):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRecordTooLarge), errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err to the client. Internal errors are logged and
// not described to avoid leaking information. Rejected transfers are
// caused by the request itself and only logged as warnings.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	switch {
	case errors.Is(err, domain.ErrTransferFailure):
		h.logger.WarnContext(r.Context(), "transfer rejected",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	case status >= http.StatusInternalServerError:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	writeStatus(w, status, domain.ErrorCode(err))
}

func writeStatus(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail and the header is already sent
	_ = json.NewEncoder(w).Encode(v)
}
