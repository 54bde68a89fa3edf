package professionals

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

// ProfessionalRepository persists professional records.
type ProfessionalRepository interface {
	Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	List(ctx context.Context) ([]*domain.Professional, error)
	Update(ctx context.Context, id uuid.UUID, name, avatarURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityRepository is used to clear a professional's schedule on delete.
type AvailabilityRepository interface {
	DeleteByProfessional(ctx context.Context, professionalID uuid.UUID) error
}

// AppointmentRepository is used to clear a professional's bookings on delete.
type AppointmentRepository interface {
	DeleteByProfessional(ctx context.Context, professionalID uuid.UUID) error
}

// Logger defines the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
