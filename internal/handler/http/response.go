package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, envelope models.Envelope) {
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeEnvelope").Msg("error writing response")
	}
}

func writeOK(w http.ResponseWriter, r *http.Request, message string, data any) {
	writeEnvelope(w, r, http.StatusOK, models.Envelope{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
		Success: true,
	})
}

// writeError renders err as a business failure or, when it is not a known
// business outcome, as the generic 500 envelope. data is attached to
// business failures only, e.g. the existing row on a duplicate create.
func writeError(w http.ResponseWriter, r *http.Request, err error, data any) {
	log := logger.FromRequest(r)

	status, message, required := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed with internal error")
		writeServerError(w, r)
		return
	}

	log.Info().Err(err).Str("uri", r.RequestURI).Msg("request rejected")
	writeEnvelope(w, r, status, models.Envelope{
		Code:     status,
		Message:  message,
		Data:     data,
		Success:  false,
		Required: required,
	})
}

func writeServerError(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusInternalServerError, models.Envelope{
		Code:    http.StatusInternalServerError,
		Message: serverErrorMessage,
	})
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	writeEnvelope(w, r, http.StatusUnauthorized, models.Envelope{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// decodeJSON reads the request body into dst. An empty body decodes to the
// zero value so that missing fields are reported by validation instead.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidRequestBody
	}

	return nil
}

// currentUserID returns the id the auth gate stored in the context.
func currentUserID(r *http.Request) string {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return strings.TrimSpace(userID)
}
