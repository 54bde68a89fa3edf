package get_schedule

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleService interface {
	EditableSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
