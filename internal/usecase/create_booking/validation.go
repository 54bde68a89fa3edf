package create_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	if err := domain.ValidateDateKey(req.Date); err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	return nil
}
