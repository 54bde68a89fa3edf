package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/usecase/create_booking"
	"github.com/igextreme/agenda-service/pkg/types"
)

// Step is one screen of the guided booking flow.
type Step string

const (
	StepSelectProfessional Step = "select_professional"
	StepSelectDateTime     Step = "select_datetime"
	StepEnterContactInfo   Step = "enter_contact_info"
	StepConfirmBooking     Step = "confirm_booking"
)

// Booker runs the actual appointment creation when the flow is confirmed.
type Booker interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Flow is the four-step booking state machine. Every step must be passed
// in order; each transition is guarded by the data the step collects.
// Flow is not safe for concurrent use; the session store serializes access.
type Flow struct {
	Step Step

	ProfessionalID uuid.UUID
	Date           string
	Time           types.TimeString
	ClientName     string
	ClientPhone    string
}

func NewFlow() *Flow {
	return &Flow{Step: StepSelectProfessional}
}

// SelectProfessional records the choice and advances to date selection.
func (f *Flow) SelectProfessional(id uuid.UUID) error {
	if f.Step != StepSelectProfessional {
		return ErrInvalidTransition
	}
	if id == uuid.Nil {
		return ErrProfessionalRequired
	}
	f.ProfessionalID = id
	f.Step = StepSelectDateTime
	return nil
}

// SelectDate records the day. Picking a new day discards any previously
// chosen time, since the old slot belongs to the old day.
func (f *Flow) SelectDate(date string) error {
	if f.Step != StepSelectDateTime {
		return ErrInvalidTransition
	}
	if date != f.Date {
		f.Time = ""
	}
	f.Date = date
	return nil
}

// SelectTime records the slot. The time must be one of the slots offered
// for the currently chosen date.
func (f *Flow) SelectTime(t types.TimeString, offered []string) error {
	if f.Step != StepSelectDateTime {
		return ErrInvalidTransition
	}
	if f.Date == "" {
		return ErrSlotRequired
	}
	for _, slot := range offered {
		if slot == t.String() {
			f.Time = t
			return nil
		}
	}
	return ErrTimeNotOffered
}

// ProceedToContact advances once both date and time are chosen.
func (f *Flow) ProceedToContact() error {
	if f.Step != StepSelectDateTime {
		return ErrInvalidTransition
	}
	if f.Date == "" || f.Time.IsZero() {
		return ErrSlotRequired
	}
	f.Step = StepEnterContactInfo
	return nil
}

// EnterContact records the client's details and advances to confirmation.
func (f *Flow) EnterContact(name, phone string) error {
	if f.Step != StepEnterContactInfo {
		return ErrInvalidTransition
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return ErrContactRequired
	}
	f.ClientName = name
	f.ClientPhone = phone
	f.Step = StepConfirmBooking
	return nil
}

// Confirm hands the collected data to the booker. Success resets the flow
// for the next booking; failure keeps it at confirmation so the client can
// retry without re-entering anything.
func (f *Flow) Confirm(ctx context.Context, booker Booker) (*create_booking.Response, error) {
	if f.Step != StepConfirmBooking {
		return nil, ErrInvalidTransition
	}

	resp, err := booker.Execute(ctx, &create_booking.Request{
		ProfessionalID: f.ProfessionalID,
		Date:           f.Date,
		Time:           f.Time,
		ClientName:     f.ClientName,
		ClientPhone:    f.ClientPhone,
	})
	if err != nil {
		return nil, err
	}

	f.Reset()
	return resp, nil
}

// Back returns to the previous step, keeping the data already entered.
func (f *Flow) Back() error {
	switch f.Step {
	case StepSelectDateTime:
		f.Step = StepSelectProfessional
	case StepEnterContactInfo:
		f.Step = StepSelectDateTime
	case StepConfirmBooking:
		f.Step = StepEnterContactInfo
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Reset clears everything and returns to the first step.
func (f *Flow) Reset() {
	*f = Flow{Step: StepSelectProfessional}
}
