package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
)

const serverErrorMessage = "server error"

// businessErrors translates service and store sentinels into user-facing
// messages. Every listed error is a business outcome answered with HTTP 200
// and success=false; anything unlisted is an internal fault. The slice is
// ordered so that an error wrapping several sentinels resolves to the first
// listed one.
var businessErrors = []struct {
	target  error
	message string
}{
	{ErrInvalidRequestBody, "invalid request body"},

	{service.ErrMissingFields, "missing required fields"},
	{service.ErrBadBirthday, "invalid birthday"},
	{service.ErrEmptyNickname, "nickname must not be empty"},
	{service.ErrInvalidID, "invalid id"},
	{service.ErrInvalidTime, "invalid time format"},
	{service.ErrInvalidTimeRange, "start time must not be later than end time"},
	{service.ErrBadCredentials, "wrong password"},
	{service.ErrForbidden, "no permission to modify this resource"},
	{service.ErrGeoFailed, "failed to resolve city coordinates"},

	{store.ErrUserAlreadyExists, "username, phone or email already registered"},
	{store.ErrUserNotFound, "user not found"},
	{store.ErrCityAlreadyExists, "city already exists"},
	{store.ErrTravelMapInUse, "city is still used by travel records"},
	{store.ErrTravelMapNotFound, "city not found"},
	{store.ErrTravelRecordNotFound, "travel record not found"},
	{store.ErrTravelAlbumNotFound, "photo not found"},
	{store.ErrUnknownReference, "referenced entity does not exist"},
}

// errorStatus classifies err. It returns the HTTP status, the envelope
// message and, for missing-field failures, the list of required fields.
func errorStatus(err error) (status int, message string, required []string) {
	for _, be := range businessErrors {
		if !errors.Is(err, be.target) {
			continue
		}

		var missing *service.MissingFieldsError
		if errors.As(err, &missing) {
			required = missing.Fields
		}
		return http.StatusOK, be.message, required
	}

	return http.StatusInternalServerError, serverErrorMessage, nil
}
