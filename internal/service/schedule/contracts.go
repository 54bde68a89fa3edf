package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

// AvailabilityRepository persists per-professional, per-date slot lists.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, professionalID uuid.UUID, date string, times []string) ([]string, error)
	GetTimes(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error)
	MapByProfessional(ctx context.Context, professionalID uuid.UUID) (domain.AvailabilityMap, error)
}

// Logger defines the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
