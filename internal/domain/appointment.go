package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/pkg/types"
)

// Appointment links a client to a professional at one date and time. It is
// created only through the booking operation, deleted on cancellation and
// never updated in place. No uniqueness is enforced on (professional, date,
// time): two bookings for the same slot coexist.
type Appointment struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	Date           string // YYYY-MM-DD
	Time           types.TimeString
	CreatedAt      time.Time
}

// ValidateDateKey checks a calendar date key is well-formed YYYY-MM-DD.
func ValidateDateKey(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return nil
}

// FormatDisplayDate renders a YYYY-MM-DD key as DD/MM/YYYY for outbound
// messages. A malformed key is returned unchanged.
func FormatDisplayDate(date string) string {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format(DisplayDateFormat)
}
