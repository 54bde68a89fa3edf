package booking_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/booking"
	createBooking "github.com/igextreme/agenda-service/internal/usecase/create_booking"
)

// SessionStore holds the in-progress flows.
type SessionStore interface {
	Create() *booking.Session
	Get(token string) (*booking.Session, error)
	Delete(token string)
}

// ScheduleService answers which slots a client may pick for a day.
type ScheduleService interface {
	BookableSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error)
}

// CreateBookingUseCase runs the booking when the flow is confirmed.
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
