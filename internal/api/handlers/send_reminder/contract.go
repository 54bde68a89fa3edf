package send_reminder

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentsService interface {
	SendReminder(ctx context.Context, appointmentID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
