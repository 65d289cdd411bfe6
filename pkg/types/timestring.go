package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire and storage format for times of day.
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a string does not parse as HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange is returned when minute arithmetic leaves the day
	ErrTimeOutOfRange = errors.New("time out of range")
)

// TimeString represents a time of day ("10:30") without a date component.
// Bookings and working hours store times of day independently from the
// booking date, so a dedicated value type keeps comparisons and arithmetic
// away from time.Time's date and zone handling.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an HH:MM string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// MustTimeString parses an HH:MM string and panics on failure.
// Intended for constants and tests.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value parses as HH:MM.
func (t TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// parse returns the value as a time.Time on the zero date.
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// Minutes returns the value as minutes from midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Crossing midnight is an error: slots and bookings never span days.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, t, minutes)
	}
	if total == 24*60 {
		// Midnight as an end bound is representable as 24:00 in queries,
		// but HH:MM wraps; keep 23:59 semantics out and report the bound.
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// strings or as time.Time values depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		if len(v) > 5 {
			v = v[:5]
		}
		*t = TimeString(v)
		return nil
	case []byte:
		s := string(v)
		if len(s) > 5 {
			s = s[:5]
		}
		*t = TimeString(s)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
