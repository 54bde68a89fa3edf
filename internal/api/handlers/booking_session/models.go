package booking_session

import (
	"time"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/booking"
	createBooking "github.com/igextreme/agenda-service/internal/usecase/create_booking"
)

// Action names accepted by the actions endpoint.
const (
	ActionSelectProfessional = "select_professional"
	ActionSelectDate         = "select_date"
	ActionSelectTime         = "select_time"
	ActionProceed            = "proceed"
	ActionEnterContact       = "enter_contact"
	ActionConfirm            = "confirm"
	ActionBack               = "back"
	ActionReset              = "reset"
)

// ActionRequest carries one flow action. Only the fields the action uses
// need to be set.
type ActionRequest struct {
	Action         string `json:"action"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// SessionResponse is the flow state after an action.
type SessionResponse struct {
	Token          string           `json:"token"`
	Step           string           `json:"step"`
	ProfessionalID string           `json:"professionalId,omitempty"`
	Date           string           `json:"date,omitempty"`
	Time           string           `json:"time,omitempty"`
	ClientName     string           `json:"clientName,omitempty"`
	ClientPhone    string           `json:"clientPhone,omitempty"`
	Booking        *BookingResponse `json:"booking,omitempty"`
}

// BookingResponse is returned once on a successful confirm.
type BookingResponse struct {
	AppointmentID    string `json:"appointmentId"`
	ClientID         string `json:"clientId"`
	ProfessionalName string `json:"professionalName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	CreatedAt        string `json:"createdAt"`
}

func fromFlow(token string, f *booking.Flow) *SessionResponse {
	resp := &SessionResponse{
		Token:       token,
		Step:        string(f.Step),
		Date:        f.Date,
		Time:        f.Time.String(),
		ClientName:  f.ClientName,
		ClientPhone: f.ClientPhone,
	}
	if f.ProfessionalID != uuid.Nil {
		resp.ProfessionalID = f.ProfessionalID.String()
	}
	return resp
}

func fromBooking(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		AppointmentID:    resp.AppointmentID.String(),
		ClientID:         resp.ClientID.String(),
		ProfessionalName: resp.ProfessionalName,
		Date:             resp.Date,
		Time:             resp.Time.String(),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
