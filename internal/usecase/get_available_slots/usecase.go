package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/service/schedule"
)

// UseCase returns the bookable slots a client may pick. Only explicitly
// saved availability is offered; the default business-hours template is an
// admin editing aid and never leaks here.
type UseCase struct {
	schedule ScheduleService
	logger   Logger
}

func NewUseCase(scheduleService ScheduleService, logger Logger) *UseCase {
	return &UseCase{
		schedule: scheduleService,
		logger:   logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProfessionalID == uuid.Nil {
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	times, err := uc.schedule.BookableSlots(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailableSlots: professional=%s date=%s: %v", req.ProfessionalID, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Times:          times,
	}, nil
}
