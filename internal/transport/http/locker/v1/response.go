package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	lockerv1 "github.com/ANGELZzz6/Hako-sub000/pkg/api/locker/v1"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

const maxBodyBytes = 1 << 20

const (
	msgLockerUnavailable = "the locker is already taken for this date and time slot, pick another time or locker"
	msgCapacityExceeded  = "the products do not fit in one locker, pick another locker or split the products"
)

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, lockerv1.Error{Code: status, Message: msg})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error()) // 404
	case errors.Is(err, model.ErrLockerUnavailable):
		writeError(w, r, http.StatusConflict, msgLockerUnavailable) // 409
	case errors.Is(err, model.ErrCapacityExceeded):
		writeError(w, r, http.StatusUnprocessableEntity, msgCapacityExceeded) // 422
	default:
		logger.Error(r.Context(), "locker api", logger.String("path", r.URL.Path), logger.ErrorF(err))
		writeError(w, r, http.StatusInternalServerError, "internal error") // 500
	}
}
