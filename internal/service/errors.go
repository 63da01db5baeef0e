package service

import (
	"errors"

	"github.com/MKhiriev/go-travel-journal/internal/validators"
)

var (
	ErrBadCredentials = errors.New("wrong username or password")
	ErrBadBirthday    = errors.New("invalid birthday")
	ErrEmptyNickname  = errors.New("nickname must not be empty")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidTimeRange = errors.New("start time must not be later than end time")

	// ErrForbidden is returned when a user mutates an entity they do not own.
	ErrForbidden = errors.New("no permission to modify this entity")

	// ErrGeoFailed wraps any geocoding failure while resolving a new city.
	ErrGeoFailed = errors.New("could not resolve city coordinates")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// MissingFieldsError lists the absent required request fields.
type MissingFieldsError = validators.MissingFieldsError

// ErrMissingFields matches every [MissingFieldsError].
var ErrMissingFields = validators.ErrMissingFields
