package update_schedule

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleService interface {
	SaveSlots(ctx context.Context, professionalID uuid.UUID, date string, times []string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
