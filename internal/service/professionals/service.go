package professionals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	professionalsRepo "github.com/igextreme/agenda-service/internal/infra/storage/professionals"
)

// Service manages the professional roster.
type Service struct {
	profRepo         ProfessionalRepository
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	logger           Logger
}

func NewService(
	profRepo ProfessionalRepository,
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		profRepo:         profRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		logger:           logger,
	}
}

// Create adds a professional. An empty avatar URL gets a deterministic
// placeholder derived from the name.
func (s *Service) Create(ctx context.Context, name, avatarURL string) (*domain.Professional, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(avatarURL) == "" {
		avatarURL = domain.DefaultAvatarURL(name)
	}

	prof, err := s.profRepo.Create(ctx, &domain.Professional{
		Name:      name,
		AvatarURL: avatarURL,
	})
	if err != nil {
		s.logger.Error("Create: repository error for professional %q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Professional created: id=%s name=%q", prof.ID, prof.Name)
	return prof, nil
}

// GetByID fetches one professional.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	prof, err := s.profRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalsRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetByID: repository error for professional=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return prof, nil
}

// List returns the roster ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Professional, error) {
	profs, err := s.profRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return profs, nil
}

// Update renames a professional and/or swaps their avatar.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name, avatarURL string) (*domain.Professional, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(avatarURL) == "" {
		avatarURL = domain.DefaultAvatarURL(name)
	}

	if err := s.profRepo.Update(ctx, id, name, avatarURL); err != nil {
		if errors.Is(err, professionalsRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Update: repository error for professional=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	prof, err := s.profRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: reload failed for professional=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload: %v", ErrInternal, err)
	}

	s.logger.Info("Professional updated: id=%s name=%q", id, name)
	return prof, nil
}

// Delete removes a professional together with their availability and
// appointments. The dependent rows go first so a failure midway never
// leaves schedule data pointing at a missing professional.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.availabilityRepo.DeleteByProfessional(ctx, id); err != nil {
		s.logger.Error("Delete: failed to clear availability for professional=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - clear availability: %v", ErrInternal, err)
	}
	if err := s.appointmentRepo.DeleteByProfessional(ctx, id); err != nil {
		s.logger.Error("Delete: failed to clear appointments for professional=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - clear appointments: %v", ErrInternal, err)
	}
	if err := s.profRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, professionalsRepo.ErrProfessionalNotFound) {
			return ErrProfessionalNotFound
		}
		s.logger.Error("Delete: repository error for professional=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Professional deleted: id=%s", id)
	return nil
}
