package get_available_slots

import (
	getAvailableSlots "github.com/igextreme/agenda-service/internal/usecase/get_available_slots"
)

type SlotsResponse struct {
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"`
	Times          []string `json:"times"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		ProfessionalID: resp.ProfessionalID.String(),
		Date:           resp.Date,
		Times:          resp.Times,
	}
}
