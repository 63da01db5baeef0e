package service

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// parseRecordTime accepts RFC 3339 timestamps, zone-less date-times (read
// as UTC) and plain dates. A plain date used as an end time means the end
// of that day, so a trip from 2024-01-01 to 2024-01-03 spans three days.
func parseRecordTime(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if day, err := time.Parse(dateLayout, raw); err == nil {
		if endOfDay {
			return day.Add(24*time.Hour - time.Second), nil
		}
		return day, nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}

// durationDays is ceil((end-start)/24h), never negative.
func durationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int((d + day - 1) / day)
}

func tripTitle(cityName string) string {
	return "Trip to " + cityName
}
