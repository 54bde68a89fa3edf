package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/igextreme/agenda-service/internal/domain"
	clientsRepo "github.com/igextreme/agenda-service/internal/infra/storage/clients"
	"github.com/igextreme/agenda-service/internal/notifications"
)

// fallbackProfessionalName is used in outbound messages when the booked
// professional can no longer be resolved (deleted between slot selection
// and confirmation). The booking itself still goes through.
const fallbackProfessionalName = "Profissional"

// UseCase creates an appointment from a confirmed booking. Deliberately no
// slot-collision check and no transaction across the client and appointment
// writes: two clients confirming the same slot both succeed, and a failure
// after the client insert leaves the client record in place.
type UseCase struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	profRepo        ProfessionalRepository
	notifier        Notifier
	logger          Logger
}

func NewUseCase(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	profRepo ProfessionalRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		profRepo:        profRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute runs the booking: find-or-create the client by phone, insert the
// appointment, queue the confirmation notifications.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: professional=%s date=%s time=%s client=%q",
		req.ProfessionalID, req.Date, req.Time, req.ClientName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	name := strings.TrimSpace(req.ClientName)
	phone := strings.TrimSpace(req.ClientPhone)

	// 1. Find the client by phone; anyone unknown gets a fresh record.
	clientCreated := false
	client, err := uc.clientRepo.GetByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, clientsRepo.ErrClientNotFound) {
			uc.logger.Error("CreateBooking: client lookup failed for phone=%s: %v", phone, err)
			return nil, fmt.Errorf("%w: client lookup: %v", ErrInternal, err)
		}

		client, err = uc.clientRepo.Create(ctx, &domain.Client{
			Name:  name,
			Phone: phone,
		})
		switch {
		case err == nil:
			clientCreated = true
			uc.logger.Info("CreateBooking: new client id=%s phone=%s", client.ID, phone)
		case errors.Is(err, clientsRepo.ErrDuplicatePhone):
			// A concurrent booking registered the same phone between the
			// lookup and the insert. Reuse that record.
			uc.logger.Warn("CreateBooking: concurrent client insert for phone=%s, retrying lookup", phone)
			client, err = uc.clientRepo.GetByPhone(ctx, phone)
			if err != nil {
				uc.logger.Error("CreateBooking: client re-lookup failed for phone=%s: %v", phone, err)
				return nil, fmt.Errorf("%w: client re-lookup: %v", ErrInternal, err)
			}
		default:
			uc.logger.Error("CreateBooking: client creation failed for phone=%s: %v", phone, err)
			return nil, fmt.Errorf("%w: client creation: %v", ErrInternal, err)
		}
	}

	// 2. Insert the appointment.
	appointment, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
		ClientID:       client.ID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: appointment creation failed for client=%s: %v", client.ID, err)
		if clientCreated {
			return nil, fmt.Errorf("%w: client=%s: %v", ErrClientCreatedBookingFailed, client.ID, err)
		}
		return nil, fmt.Errorf("%w: appointment creation: %v", ErrInternal, err)
	}

	// 3. Resolve the professional's name for the outbound messages. A
	// missing professional downgrades the name, never the booking.
	profName := fallbackProfessionalName
	profMissing := true
	if prof, err := uc.profRepo.GetByID(ctx, req.ProfessionalID); err == nil {
		profName = prof.Name
		profMissing = false
	} else {
		uc.logger.Warn("CreateBooking: professional=%s not resolved, using fallback name: %v",
			req.ProfessionalID, err)
	}

	// 4. Queue the notifications. Delivery is asynchronous and best-effort.
	uc.notifier.Enqueue(notifications.Event{
		Kind:                notifications.EventBookingCreated,
		ClientName:          name,
		ClientPhone:         phone,
		AppointmentID:       appointment.ID,
		ClientID:            client.ID,
		ProfessionalID:      req.ProfessionalID,
		ProfessionalName:    profName,
		Date:                req.Date,
		Time:                req.Time,
		ProfessionalMissing: profMissing,
	})

	uc.logger.Info("CreateBooking: appointment id=%s created for client=%s", appointment.ID, client.ID)

	return &Response{
		AppointmentID:    appointment.ID,
		ClientID:         client.ID,
		ProfessionalID:   req.ProfessionalID,
		ProfessionalName: profName,
		Date:             appointment.Date,
		Time:             appointment.Time,
		ClientName:       name,
		ClientPhone:      phone,
		CreatedAt:        appointment.CreatedAt,
	}, nil
}
