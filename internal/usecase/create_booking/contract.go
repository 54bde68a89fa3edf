package create_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/internal/notifications"
)

// ClientRepository finds and creates clients. Phone is the lookup key.
type ClientRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// AppointmentRepository creates bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, app *domain.Appointment) (*domain.Appointment, error)
}

// ProfessionalRepository resolves the booked professional's display name.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// Notifier queues lifecycle events for asynchronous delivery.
type Notifier interface {
	Enqueue(event notifications.Event)
}

// Logger defines the logging interface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
