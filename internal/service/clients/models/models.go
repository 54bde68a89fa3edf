package models

import (
	"github.com/igextreme/agenda-service/internal/domain"
)

// ClientHistory is a client together with everything recorded about them:
// bookings, chat history and uploaded files.
type ClientHistory struct {
	Client       *domain.Client        `json:"client"`
	Appointments []*domain.Appointment `json:"appointments"`
	Messages     []*domain.ChatMessage `json:"messages"`
	Files        []*domain.ClientFile  `json:"files"`
}
