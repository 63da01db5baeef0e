package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalidBirthday is returned when a birthday value cannot be decoded or
// carries an out-of-range month or day.
var ErrInvalidBirthday = errors.New("invalid birthday")

// User represents a registered traveller.
// PasswordHash is never serialized.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Nickname     string      `json:"nickname"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Avatar       string      `json:"avatar"`
	Birthday     Birthday    `json:"birthday"`
	ExtraFields  ExtraFields `json:"extraFields,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the owner projection embedded into travel records.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Birthday is a calendar date without a time zone.
type Birthday struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsZero reports whether no part of the date was provided.
func (b Birthday) IsZero() bool {
	return b.Year == 0 && b.Month == 0 && b.Day == 0
}

// Validate checks month and day ranges.
func (b Birthday) Validate() error {
	if b.Month < 1 || b.Month > 12 || b.Day < 1 || b.Day > 31 {
		return ErrInvalidBirthday
	}
	return nil
}

// UnmarshalJSON accepts either a JSON object or a string holding a
// serialized JSON object, e.g. "{\"year\":2000,\"month\":1,\"day\":1}".
func (b *Birthday) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBirthday(data)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBirthday decodes a raw JSON birthday value in any of the forms
// accepted by [Birthday.UnmarshalJSON]. It does not check ranges.
func ParseBirthday(data []byte) (Birthday, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Birthday{}, nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return Birthday{}, ErrInvalidBirthday
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return Birthday{}, nil
		}
		data = []byte(raw)
	}

	type plain Birthday
	var parsed plain
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Birthday{}, ErrInvalidBirthday
	}

	return Birthday(parsed), nil
}
