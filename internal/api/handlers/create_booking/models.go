package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/igextreme/agenda-service/internal/usecase/create_booking"
	"github.com/igextreme/agenda-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"` // "2025-07-15"
	Time           string `json:"time"` // "10:00"
	ClientName     string `json:"clientName"`
	ClientPhone    string `json:"clientPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	AppointmentID    string `json:"appointmentId"`
	ClientID         string `json:"clientId"`
	ProfessionalID   string `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ClientName       string `json:"clientName"`
	ClientPhone      string `json:"clientPhone"`
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	professionalID, err := uuid.Parse(r.ProfessionalID)
	if err != nil {
		return nil, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProfessionalID: professionalID,
		Date:           r.Date,
		Time:           bookingTime,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		AppointmentID:    resp.AppointmentID.String(),
		ClientID:         resp.ClientID.String(),
		ProfessionalID:   resp.ProfessionalID.String(),
		ProfessionalName: resp.ProfessionalName,
		Date:             resp.Date,
		Time:             resp.Time.String(),
		ClientName:       resp.ClientName,
		ClientPhone:      resp.ClientPhone,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
