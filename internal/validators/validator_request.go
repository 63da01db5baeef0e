package validators

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-travel-journal/models"
)

// Field name constants used to specify which fields should be validated.
// They match the JSON names reported back to the client.
const (
	FieldUsername    = "username"
	FieldPhone       = "phone"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldBirthday    = "birthday"
	FieldCityName    = "cityName"
	FieldStartTime   = "startTime"
	FieldEndTime     = "endTime"
	FieldDescription = "description"
	FieldCityImage   = "cityImage"
	FieldImageURL    = "imageUrl"
	FieldTitle       = "title"
)

// RequestValidator checks that the required fields of incoming requests are
// present. A string made of whitespace only counts as absent.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the request type. When fields is non-empty only
// those fields are checked; naming a field the type does not have yields
// [ErrUnknownField].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return check(v.registerFields(value), fields)
	case *models.RegisterRequest:
		return check(v.registerFields(*value), fields)

	case models.LoginRequest:
		return check(v.loginFields(value), fields)
	case *models.LoginRequest:
		return check(v.loginFields(*value), fields)

	case models.CreateRecordRequest:
		return check(v.recordFields(value), fields)
	case *models.CreateRecordRequest:
		return check(v.recordFields(*value), fields)

	case models.CreateAlbumRequest:
		return check(v.albumFields(value), fields)
	case *models.CreateAlbumRequest:
		return check(v.albumFields(*value), fields)

	case models.CityRequest:
		return check([]field{{FieldCityName, present(value.CityName)}}, fields)
	case *models.CityRequest:
		return check([]field{{FieldCityName, present(value.CityName)}}, fields)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

type field struct {
	name    string
	present bool
}

func (v *RequestValidator) registerFields(r models.RegisterRequest) []field {
	return []field{
		{FieldUsername, present(r.Username)},
		{FieldPhone, present(r.Phone)},
		{FieldPassword, present(r.Password)},
		{FieldEmail, present(r.Email)},
		{FieldBirthday, rawPresent(r.Birthday)},
	}
}

func (v *RequestValidator) loginFields(r models.LoginRequest) []field {
	return []field{
		{FieldUsername, present(r.Username)},
		{FieldPassword, present(r.Password)},
	}
}

func (v *RequestValidator) recordFields(r models.CreateRecordRequest) []field {
	return []field{
		{FieldCityName, present(r.CityName)},
		{FieldStartTime, present(r.StartTime)},
		{FieldEndTime, present(r.EndTime)},
		{FieldDescription, present(r.Description)},
		{FieldCityImage, present(r.CityImage)},
	}
}

func (v *RequestValidator) albumFields(r models.CreateAlbumRequest) []field {
	return []field{
		{FieldImageURL, present(r.ImageURL)},
		{FieldCityName, present(r.CityName)},
		{FieldTitle, present(r.Title)},
	}
}

// check returns a *MissingFieldsError naming every absent field in scope.
func check(all []field, scope []string) error {
	for _, name := range scope {
		if !slices.ContainsFunc(all, func(f field) bool { return f.name == name }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	var missing []string
	for _, f := range all {
		if len(scope) > 0 && !slices.Contains(scope, f.name) {
			continue
		}
		if !f.present {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// rawPresent treats an absent value, null and "" as missing.
func rawPresent(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null")) && !bytes.Equal(raw, []byte(`""`))
}
