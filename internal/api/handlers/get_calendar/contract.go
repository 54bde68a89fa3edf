package get_calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

type ScheduleService interface {
	MonthOverview(ctx context.Context, professionalID uuid.UUID, year int, month int) (domain.AvailabilityMap, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
