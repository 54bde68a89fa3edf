package get_client

import (
	"time"

	"github.com/igextreme/agenda-service/internal/service/clients/models"
)

type AppointmentResponse struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type FileResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	UploadedAt string `json:"uploadedAt"`
}

type Response struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Phone        string                `json:"phone"`
	Appointments []AppointmentResponse `json:"appointments"`
	Messages     []MessageResponse     `json:"messages"`
	Files        []FileResponse        `json:"files"`
}

func FromHistory(h *models.ClientHistory) *Response {
	resp := &Response{
		ID:           h.Client.ID.String(),
		Name:         h.Client.Name,
		Phone:        h.Client.Phone,
		Appointments: make([]AppointmentResponse, 0, len(h.Appointments)),
		Messages:     make([]MessageResponse, 0, len(h.Messages)),
		Files:        make([]FileResponse, 0, len(h.Files)),
	}
	for _, a := range h.Appointments {
		resp.Appointments = append(resp.Appointments, AppointmentResponse{
			ID:             a.ID.String(),
			ProfessionalID: a.ProfessionalID.String(),
			Date:           a.Date,
			Time:           a.Time.String(),
		})
	}
	for _, m := range h.Messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			ID:        m.ID.String(),
			Sender:    string(m.Sender),
			Text:      m.Text,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}
	for _, f := range h.Files {
		resp.Files = append(resp.Files, FileResponse{
			ID:         f.ID.String(),
			Name:       f.Name,
			URL:        f.URL,
			Type:       string(f.Type),
			UploadedAt: f.UploadedAt,
		})
	}
	return resp
}
