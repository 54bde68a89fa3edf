package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the 24-hour wall-clock layout used across the service.
const timeLayout = "15:04"

var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString is a wall-clock time of day in "HH:MM" form.
type TimeString string

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the value is a well-formed 24-hour "HH:MM" string.
// Single-digit hours or minutes ("9:5") are rejected.
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time of day m minutes after t, wrapping at midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(timeLayout)), nil
}
