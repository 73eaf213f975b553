package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Extra holds the members of an object that matched no declared field.
// It is only populated in ModeLenient.
type Extra map[string]json.RawMessage

// Enum is implemented by remote enumerations. Known reports whether the
// value is part of the set this client was built against.
type Enum interface {
	Known() bool
}

// UnknownVariant is the value assigned to an unrecognised enumeration
// value in ModeLenient. Enumerations are uint8 based on the wire.
const UnknownVariant = math.MaxUint8

// NullTimeSentinel is the literal the remote API sends instead of null for
// absent timestamps.
const NullTimeSentinel = "0001-01-01T00:00:00"

// NullTime is an optional timestamp. Both null and NullTimeSentinel decode
// to an invalid NullTime.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *NullTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = NullTime{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == NullTimeSentinel || s == "" {
		*t = NullTime{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	*t = NullTime{Time: parsed, Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler. An invalid NullTime is encoded as
// NullTimeSentinel, matching the remote encoding.
func (t NullTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return json.Marshal(NullTimeSentinel)
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
