package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

// ClientRepository persists client records.
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

// AppointmentRepository loads a client's bookings.
type AppointmentRepository interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Appointment, error)
}

// ChatMessageRepository persists the per-client chat log.
type ChatMessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.ChatMessage, error)
}

// ClientFileRepository persists file attachment records.
type ClientFileRepository interface {
	Create(ctx context.Context, file *domain.ClientFile) (*domain.ClientFile, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.ClientFile, error)
}

// Logger defines the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
