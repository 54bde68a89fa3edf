package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/pkg/types"
)

// EventKind identifies what happened and therefore which channels fire
// and with which bodies.
type EventKind string

const (
	EventBookingCreated    EventKind = "booking_created"
	EventBookingCancelled  EventKind = "booking_cancelled"
	EventReminderRequested EventKind = "reminder_requested"
	EventTestBooking       EventKind = "test_booking"
	EventTestCancellation  EventKind = "test_cancellation"
)

// testPhone is the mock recipient for test deliveries.
const testPhone = "5511999999999"

// Event is a queued notification. Fields are filled according to the
// kind; test events carry only Kind.
type Event struct {
	Kind EventKind

	ClientName  string
	ClientPhone string

	AppointmentID    uuid.UUID
	ClientID         uuid.UUID
	ProfessionalID   uuid.UUID
	ProfessionalName string
	Date             string
	Time             types.TimeString

	// ProfessionalMissing marks a booking whose professional vanished
	// before confirmation. The personal message is suppressed; the webhook
	// still fires with the fallback display name.
	ProfessionalMissing bool

	Timestamp time.Time
}

// DisplayDate returns the event date in DD/MM/YYYY as shown to clients.
func (e Event) DisplayDate() string {
	return domain.FormatDisplayDate(e.Date)
}

type clientPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type appointmentPayload struct {
	ID               uuid.UUID        `json:"id"`
	ClientID         uuid.UUID        `json:"clientId"`
	ProfessionalID   uuid.UUID        `json:"professionalId"`
	Date             string           `json:"date"`
	Time             types.TimeString `json:"time"`
	ProfessionalName string           `json:"professionalName"`
	FormattedDate    string           `json:"formattedDate"`
}

type bookingCreatedPayload struct {
	Event       EventKind          `json:"event"`
	Client      clientPayload      `json:"client"`
	Appointment appointmentPayload `json:"appointment"`
	Timestamp   string             `json:"timestamp"`
}

type bookingCancelledPayload struct {
	Event         EventKind     `json:"event"`
	Client        clientPayload `json:"client"`
	AppointmentID uuid.UUID     `json:"appointmentId"`
	Reason        string        `json:"reason"`
	Timestamp     string        `json:"timestamp"`
}

type testPayload struct {
	Event   EventKind              `json:"event"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Client  clientPayload          `json:"client"`
}

// webhookPayload builds the STANDARD_JSON body for the event.
func (e Event) webhookPayload() interface{} {
	switch e.Kind {
	case EventBookingCreated:
		return bookingCreatedPayload{
			Event: e.Kind,
			Client: clientPayload{
				Name:  e.ClientName,
				Phone: e.ClientPhone,
			},
			Appointment: appointmentPayload{
				ID:               e.AppointmentID,
				ClientID:         e.ClientID,
				ProfessionalID:   e.ProfessionalID,
				Date:             e.Date,
				Time:             e.Time,
				ProfessionalName: e.ProfessionalName,
				FormattedDate:    e.DisplayDate(),
			},
			Timestamp: e.Timestamp.Format(time.RFC3339),
		}
	case EventBookingCancelled:
		return bookingCancelledPayload{
			Event: e.Kind,
			Client: clientPayload{
				Name:  e.ClientName,
				Phone: e.ClientPhone,
			},
			AppointmentID: e.AppointmentID,
			Reason:        "Cancelled by Admin",
			Timestamp:     e.Timestamp.Format(time.RFC3339),
		}
	case EventTestBooking:
		return testPayload{
			Event:   e.Kind,
			Message: "Teste de Webhook de Agendamento",
			Data: map[string]interface{}{
				"client": "João Teste",
				"date":   "2025-12-31",
				"time":   "10:00",
			},
			Client: clientPayload{Name: "Teste", Phone: testPhone},
		}
	case EventTestCancellation:
		return testPayload{
			Event:   e.Kind,
			Message: "Teste de Webhook de Cancelamento",
			Data: map[string]interface{}{
				"client": "Maria Teste",
				"reason": "Teste administrativo",
			},
			Client: clientPayload{Name: "Teste", Phone: testPhone},
		}
	default:
		return nil
	}
}

// webhookText derives the phone and text used by the EVOLUTION_API_TEXT
// webhook format.
func (e Event) webhookText() (phone, text string) {
	switch e.Kind {
	case EventBookingCreated:
		return e.ClientPhone, "Novo agendamento: " + e.ClientName + " com " + e.ProfessionalName + " dia " + e.DisplayDate()
	case EventBookingCancelled:
		return e.ClientPhone, "Agendamento cancelado: " + e.ClientName
	case EventTestBooking:
		return testPhone, "Teste de Webhook de Agendamento"
	case EventTestCancellation:
		return testPhone, "Teste de Webhook de Cancelamento"
	default:
		return "", ""
	}
}
