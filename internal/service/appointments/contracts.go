package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/internal/notifications"
)

// AppointmentRepository persists bookings.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientRepository loads the client behind a booking.
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

// ProfessionalRepository loads the professional behind a booking.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// Notifier queues events for asynchronous delivery.
type Notifier interface {
	Enqueue(event notifications.Event)
}

// Logger defines the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
