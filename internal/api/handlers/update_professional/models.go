package update_professional

import (
	"github.com/igextreme/agenda-service/internal/domain"
)

type UpdateProfessionalRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type ProfessionalResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

func FromDomain(p *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
	}
}
