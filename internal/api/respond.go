package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mverdier/coinsplit/internal/auth"
	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/service"
)

// apiError is the error payload of every non-2xx response.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: message}})
}

// writeError maps domain and handler errors onto HTTP statuses. Anything
// not recognized is treated as an internal error and its detail kept out
// of the response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrOwnerNotFound),
		errors.Is(err, service.ErrParticipantNotFound):
		writeErrorCode(w, http.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.Is(err, service.ErrEmailAlreadyTaken),
		errors.Is(err, service.ErrNameNotAvailable),
		errors.Is(err, service.ErrAlreadyMember):
		writeErrorCode(w, http.StatusConflict, "CONFLICT", err.Error())

	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrForbidden):
		writeErrorCode(w, http.StatusForbidden, "FORBIDDEN", err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())

	case errors.Is(err, service.ErrNegativeTotal),
		errors.Is(err, service.ErrPayerNotInGroup),
		errors.Is(err, service.ErrAuthorNotInGroup),
		errors.Is(err, service.ErrInvalidPage),
		errors.Is(err, service.ErrInvalidPageSize),
		errors.Is(err, auth.ErrWeakPassword),
		isValidationError(err):
		writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())

	default:
		slog.Error("request failed", "error", err)
		writeErrorCode(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

// isValidationError reports whether err comes from parsing a value type.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrIDMalformed,
		domain.ErrIDZero,
		domain.ErrIDMax,
		domain.ErrEmailInvalid,
		domain.ErrUsernameEmpty,
		domain.ErrUsernameTooShort,
		domain.ErrUsernameTooLong,
		domain.ErrUsernameFirstChar,
		domain.ErrUsernameInvalidChars,
		domain.ErrGroupnameEmpty,
		domain.ErrGroupnameTooLong,
		domain.ErrUnknownRole,
		domain.ErrNegativeTotal,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
}
