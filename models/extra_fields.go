package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedExtraValue is returned when an extra field holds an object
// or an array.
var ErrUnsupportedExtraValue = errors.New("extra field value must be a string, number, boolean or null")

// ExtraKind enumerates the scalar variants an [ExtraValue] may hold.
type ExtraKind uint8

const (
	ExtraNull ExtraKind = iota
	ExtraString
	ExtraNumber
	ExtraBool
)

// ExtraValue is a closed scalar variant stored in [ExtraFields].
type ExtraValue struct {
	kind ExtraKind
	str  string
	num  float64
	flag bool
}

func StringValue(s string) ExtraValue { return ExtraValue{kind: ExtraString, str: s} }
func NumberValue(n float64) ExtraValue { return ExtraValue{kind: ExtraNumber, num: n} }
func BoolValue(b bool) ExtraValue { return ExtraValue{kind: ExtraBool, flag: b} }
func NullValue() ExtraValue { return ExtraValue{kind: ExtraNull} }
func (v ExtraValue) Kind() ExtraKind { return v.kind }
func (v ExtraValue) Str() string { return v.str }
func (v ExtraValue) Number() float64 { return v.num }
func (v ExtraValue) Bool() bool { return v.flag }

// MarshalJSON implements [json.Marshaler].
func (v ExtraValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ExtraString:
		return json.Marshal(v.str)
	case ExtraNumber:
		return json.Marshal(v.num)
	case ExtraBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. Objects and arrays are rejected.
func (v *ExtraValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrUnsupportedExtraValue
	}

	switch data[0] {
	case 'n':
		*v = NullValue()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
		return nil
	case '{', '[':
		return ErrUnsupportedExtraValue
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = NumberValue(n)
		return nil
	}
}

// ExtraFields is the open-ended per-user attribute map. It is persisted as
// a JSONB column.
type ExtraFields map[string]ExtraValue

// Value implements [driver.Valuer].
func (f ExtraFields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements [sql.Scanner].
func (f *ExtraFields) Scan(src any) error {
	var data []byte
	switch value := src.(type) {
	case nil:
		*f = ExtraFields{}
		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("cannot scan %T into ExtraFields", src)
	}

	fields := ExtraFields{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("error decoding extra fields: %w", err)
	}
	*f = fields
	return nil
}
