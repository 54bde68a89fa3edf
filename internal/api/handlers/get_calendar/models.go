package get_calendar

import (
	"github.com/igextreme/agenda-service/internal/domain"
)

// CalendarResponse marks, per stored date of the month, whether the day has
// any bookable slot. Days with no stored row are simply absent.
type CalendarResponse struct {
	ProfessionalID string          `json:"professionalId"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Days           map[string]bool `json:"days"`
}

func FromAvailability(professionalID string, year, month int, m domain.AvailabilityMap) *CalendarResponse {
	days := make(map[string]bool, len(m))
	for date := range m {
		days[date] = m.IsBookable(date)
	}
	return &CalendarResponse{
		ProfessionalID: professionalID,
		Year:           year,
		Month:          month,
		Days:           days,
	}
}
