package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"drivesync-backend/internal/repository"
	"drivesync-backend/internal/security"
	"drivesync-backend/internal/service"
	"drivesync-backend/internal/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondServiceError maps service and repository errors onto HTTP
// statuses. Unknown errors degrade to a generic 500 so persistence
// details never leak to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrSameCar),
		errors.Is(err, service.ErrCarUnavailable),
		errors.Is(err, repository.ErrRequestNotPending):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotRentalOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrProfileFieldsRequired),
		errors.Is(err, service.ErrDeliveryLocationRequired),
		errors.Is(err, service.ErrInvalidRentalMode),
		errors.Is(err, service.ErrInvalidCarStatus),
		errors.Is(err, utils.ErrEndNotAfterStart),
		errors.Is(err, utils.ErrStartInPast):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
