package list_clients

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

type ClientResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Phone        string                `json:"phone"`
	Appointments []AppointmentResponse `json:"appointments"`
	Messages     []MessageResponse     `json:"messages"`
	Files        []FileResponse        `json:"files"`
}

type ListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

func FromHistories(histories []*models.ClientHistory) *ListResponse {
	out := make([]ClientResponse, 0, len(histories))
	for _, h := range histories {
		client := ClientResponse{
			ID:           h.Client.ID.String(),
			Name:         h.Client.Name,
			Phone:        h.Client.Phone,
			Appointments: make([]AppointmentResponse, 0, len(h.Appointments)),
			Messages:     make([]MessageResponse, 0, len(h.Messages)),
			Files:        make([]FileResponse, 0, len(h.Files)),
		}
		for _, a := range h.Appointments {
			client.Appointments = append(client.Appointments, AppointmentResponse{
				ID:             a.ID.String(),
				ProfessionalID: a.ProfessionalID.String(),
				Date:           a.Date,
				Time:           a.Time.String(),
			})
		}
		for _, m := range h.Messages {
			client.Messages = append(client.Messages, MessageResponse{
				ID:        m.ID.String(),
				Sender:    string(m.Sender),
				Text:      m.Text,
				Timestamp: m.Timestamp.Format(time.RFC3339),
			})
		}
		for _, f := range h.Files {
			client.Files = append(client.Files, FileResponse{
				ID:         f.ID.String(),
				Name:       f.Name,
				URL:        f.URL,
				Type:       string(f.Type),
				UploadedAt: f.UploadedAt,
			})
		}
		out = append(out, client)
	}
	return &ListResponse{Clients: out}
}
