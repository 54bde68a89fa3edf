package get_available_slots

import (
	"context"

	"github.com/google/uuid"
)

// ScheduleService answers what a client may book for one day.
type ScheduleService interface {
	BookableSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error)
}

// Logger defines the logging interface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
