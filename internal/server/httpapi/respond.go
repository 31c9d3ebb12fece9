package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ayushchouksey/jeclens/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps service errors to HTTP statuses and stable machine codes.
// The code "token_expired" is the signal the client keys its refresh retry on.
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"

	switch {
	case errors.Is(err, common.ErrAuthenticationRequired):
		status, code = http.StatusUnauthorized, "authentication_required"
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrRefreshTokenExpired):
		status, code = http.StatusUnauthorized, "token_expired"
	case errors.Is(err, common.ErrInvalidToken):
		status, code = http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, common.ErrAuthorizationDenied):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrValidation):
		status, code = http.StatusBadRequest, "validation"
	case errors.Is(err, common.ErrQuotaExceeded):
		status, code = http.StatusTooManyRequests, "quota_exceeded"
	case errors.Is(err, common.ErrAlreadyVoted):
		status, code = http.StatusConflict, "already_voted"
	case errors.Is(err, common.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}
