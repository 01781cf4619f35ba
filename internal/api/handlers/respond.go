package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/carewise/carehome-directory/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"message": message,
	})
}

// respondWithAppError maps the error taxonomy onto HTTP statuses: not found
// and validation are expected outcomes with distinct statuses; anything
// else surfaces generically without leaking internals.
func respondWithAppError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		log.Error().Err(err).Msg("unexpected error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrorTypeValidation:
		if len(appErr.Fields) > 0 {
			respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
				"message": appErr.Message,
				"errors":  appErr.Fields,
			})
			return
		}
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	default:
		log.Error().Err(appErr).Msg("unexpected error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
