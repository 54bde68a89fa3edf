package schedule

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
	availabilityRepo "github.com/igextreme/agenda-service/internal/infra/storage/availability"
)

// timePattern accepts 24h clock times, with or without a leading zero on
// the hour.
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Service manages professional availability. The same stored data answers
// two different questions: what an admin should see when editing a day
// (absent rows show the default business hours as a starting point) and
// what a client may book (absent or empty rows offer nothing).
type Service struct {
	repo   AvailabilityRepository
	logger Logger
}

func NewService(repo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// EditableSlots returns the slot list an admin edits for the given day.
// A day with no stored row starts from the default business hours; a day
// explicitly saved empty stays empty.
func (s *Service) EditableSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error) {
	if err := domain.ValidateDateKey(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	times, err := s.repo.GetTimes(ctx, professionalID, date)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			defaults := make([]string, len(domain.DefaultBusinessHours))
			copy(defaults, domain.DefaultBusinessHours)
			return defaults, nil
		}
		s.logger.Error("EditableSlots: repository error for professional=%s date=%s: %v", professionalID, date, err)
		return nil, fmt.Errorf("%w: EditableSlots - repository error: %v", ErrInternal, err)
	}

	return times, nil
}

// BookableSlots returns what a client may pick for the given day. Unlike
// the editing view there is no default: a professional with nothing saved
// is simply not bookable that day.
func (s *Service) BookableSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error) {
	if err := domain.ValidateDateKey(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	times, err := s.repo.GetTimes(ctx, professionalID, date)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return []string{}, nil
		}
		s.logger.Error("BookableSlots: repository error for professional=%s date=%s: %v", professionalID, date, err)
		return nil, fmt.Errorf("%w: BookableSlots - repository error: %v", ErrInternal, err)
	}

	return times, nil
}

// SaveSlots validates, normalizes and persists the full slot list for one
// day, replacing whatever was stored. One bad entry rejects the whole
// save. The returned list is what the store confirmed.
func (s *Service) SaveSlots(ctx context.Context, professionalID uuid.UUID, date string, times []string) ([]string, error) {
	if err := domain.ValidateDateKey(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	normalized := make([]string, 0, len(times))
	seen := make(map[string]struct{}, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if !timePattern.MatchString(t) {
			s.logger.Warn("SaveSlots: rejected slot %q for professional=%s date=%s", t, professionalID, date)
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, t)
		}
		if len(t) == 4 {
			// Single-digit hour. Stored slots are always zero-padded so
			// that the booking side, which parses strict "HH:MM", can
			// book every slot the admin saved.
			t = "0" + t
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	sort.Strings(normalized)

	confirmed, err := s.repo.Upsert(ctx, professionalID, date, normalized)
	if err != nil {
		s.logger.Error("SaveSlots: repository error for professional=%s date=%s: %v", professionalID, date, err)
		return nil, fmt.Errorf("%w: SaveSlots - repository error: %v", ErrInternal, err)
	}

	if !equalSlots(normalized, confirmed) {
		// The store is the source of truth; report what it kept.
		s.logger.Warn("SaveSlots: store confirmed %d slots, sent %d for professional=%s date=%s",
			len(confirmed), len(normalized), professionalID, date)
	}

	s.logger.Info("Availability saved: professional=%s date=%s slots=%d", professionalID, date, len(confirmed))
	return confirmed, nil
}

// MonthOverview returns the stored availability for every day of the given
// month, keyed by date. Days without a row are absent from the map.
func (s *Service) MonthOverview(ctx context.Context, professionalID uuid.UUID, year int, month int) (domain.AvailabilityMap, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}

	all, err := s.repo.MapByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("MonthOverview: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: MonthOverview - repository error: %v", ErrInternal, err)
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	result := domain.AvailabilityMap{}
	for date, times := range all {
		if strings.HasPrefix(date, prefix) {
			result[date] = times
		}
	}
	return result, nil
}

func equalSlots(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
