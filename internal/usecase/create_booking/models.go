package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/pkg/types"
)

// Request carries everything a booking needs: the slot and the contact
// details typed in by the client.
type Request struct {
	ProfessionalID uuid.UUID
	Date           string           // YYYY-MM-DD
	Time           types.TimeString // e.g. "10:00"
	ClientName     string
	ClientPhone    string
}

// Response is the created appointment with the resolved identities.
type Response struct {
	AppointmentID    uuid.UUID
	ClientID         uuid.UUID
	ProfessionalID   uuid.UUID
	ProfessionalName string
	Date             string
	Time             types.TimeString
	ClientName       string
	ClientPhone      string
	CreatedAt        time.Time
}
