package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	amapStatusOK          = "1"
	amapStatusFailed      = "0"
	amapInfoCodeForbidden = "10009"
)

// mapHTTPError converts a non-2xx transport response into ErrGeocodeUnreachable.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrGeocodeUnreachable, resp.StatusCode(), body)
}

// mapGeocodeStatus converts the provider's status/infocode pair into a
// sentinel error. It returns nil for a successful status.
func mapGeocodeStatus(status, infoCode, info string) error {
	switch {
	case status == amapStatusOK:
		return nil
	case status == amapStatusFailed && infoCode == amapInfoCodeForbidden:
		return fmt.Errorf("%w: %s", ErrGeocodeForbidden, info)
	case status == amapStatusFailed:
		return fmt.Errorf("%w: %s (%s)", ErrGeocodeProvider, info, infoCode)
	default:
		return fmt.Errorf("%w: unexpected status %q", ErrGeocodeProvider, status)
	}
}
