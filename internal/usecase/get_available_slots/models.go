package get_available_slots

import "github.com/google/uuid"

// Request identifies the professional and day a client is looking at.
type Request struct {
	ProfessionalID uuid.UUID
	Date           string // YYYY-MM-DD
}

// Response is the bookable slot list for that day. Empty means the
// professional takes no bookings on that date.
type Response struct {
	ProfessionalID uuid.UUID
	Date           string
	Times          []string
}
