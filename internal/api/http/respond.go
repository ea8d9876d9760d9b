package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses: validation 400,
// conflicts 409, not-found 404, bad credentials 401.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRentalDays),
		errors.Is(err, domain.ErrUnknownCarType),
		errors.Is(err, domain.ErrUnknownTier),
		errors.Is(err, domain.ErrUnknownFeePolicy):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrCarAlreadyRented),
		errors.Is(err, domain.ErrCarUnavailable),
		errors.Is(err, domain.ErrRentalAlreadyReturned),
		errors.Is(err, domain.ErrLoginIDTaken),
		errors.Is(err, domain.ErrPhoneNumberTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
