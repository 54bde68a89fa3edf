package domain

import (
	"time"

	"github.com/google/uuid"
)

// DaySlots is the saved slot set for one (professional, date) pair. An empty
// Times list is a valid saved state meaning the date offers nothing.
type DaySlots struct {
	ProfessionalID uuid.UUID
	Date           string // YYYY-MM-DD
	Times          []string
	UpdatedAt      time.Time
}

// AvailabilityMap maps date keys to slot lists for one professional.
type AvailabilityMap map[string][]string

// IsBookable reports whether a date offers at least one slot. An absent key
// and a present-but-empty list are equivalent: both mean the date is not
// selectable in the client calendar.
func (m AvailabilityMap) IsBookable(date string) bool {
	return len(m[date]) > 0
}

// HasTime reports whether the given time is offered on the given date.
func (m AvailabilityMap) HasTime(date, t string) bool {
	for _, slot := range m[date] {
		if slot == t {
			return true
		}
	}
	return false
}
