package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	appointmentsRepo "github.com/igextreme/agenda-service/internal/infra/storage/appointments"
	"github.com/igextreme/agenda-service/internal/notifications"
)

// Service handles admin operations on existing bookings: cancellation and
// reminders. Both queue notifications; neither waits for delivery, and a
// notification that later fails never turns a completed cancellation into
// an error.
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	profRepo        ProfessionalRepository
	notifier        Notifier
	logger          Logger
}

func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	profRepo ProfessionalRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		profRepo:        profRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Cancel deletes the booking and queues the cancellation notifications.
// The delete is the operation; notifications fire only when the client
// and professional could both be resolved.
func (s *Service) Cancel(ctx context.Context, appointmentID uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	client, clientErr := s.clientRepo.GetByID(ctx, appointment.ClientID)
	professional, profErr := s.profRepo.GetByID(ctx, appointment.ProfessionalID)

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: delete failed for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - delete: %v", ErrInternal, err)
	}

	if clientErr != nil || profErr != nil {
		s.logger.Warn("Cancel: appointment=%s deleted but notifications skipped (client err=%v, professional err=%v)",
			appointmentID, clientErr, profErr)
		return nil
	}

	s.notifier.Enqueue(notifications.Event{
		Kind:             notifications.EventBookingCancelled,
		ClientName:       client.Name,
		ClientPhone:      client.Phone,
		AppointmentID:    appointment.ID,
		ClientID:         client.ID,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		Date:             appointment.Date,
		Time:             appointment.Time,
	})

	s.logger.Info("Appointment cancelled: id=%s client=%s", appointmentID, client.ID)
	return nil
}

// SendReminder queues the reminder message for an upcoming booking.
func (s *Service) SendReminder(ctx context.Context, appointmentID uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("SendReminder: repository error for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: SendReminder - repository error: %v", ErrInternal, err)
	}

	client, err := s.clientRepo.GetByID(ctx, appointment.ClientID)
	if err != nil {
		s.logger.Warn("SendReminder: client lookup failed for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: SendReminder - client lookup: %v", ErrInternal, err)
	}
	professional, err := s.profRepo.GetByID(ctx, appointment.ProfessionalID)
	if err != nil {
		s.logger.Warn("SendReminder: professional lookup failed for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: SendReminder - professional lookup: %v", ErrInternal, err)
	}

	s.notifier.Enqueue(notifications.Event{
		Kind:             notifications.EventReminderRequested,
		ClientName:       client.Name,
		ClientPhone:      client.Phone,
		AppointmentID:    appointment.ID,
		ClientID:         client.ID,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		Date:             appointment.Date,
		Time:             appointment.Time,
	})

	s.logger.Info("Reminder queued: appointment=%s client=%s", appointmentID, client.ID)
	return nil
}
