package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)
		if err == nil {
			return
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			w.WriteHeader(statusOf(err, appErr))
			w.Write(appErr.Marshal())

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalError().Marshal())
	}
}

func statusOf(err error, appErr *AppError) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSuperseded), errors.Is(err, ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, ErrBackendUnavailable):
		return http.StatusBadGateway
	case appErr.IsValidation():
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
