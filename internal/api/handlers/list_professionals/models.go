package list_professionals

import (
	"github.com/igextreme/agenda-service/internal/domain"
)

type ProfessionalResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type ListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

func FromDomain(profs []*domain.Professional) *ListResponse {
	out := make([]ProfessionalResponse, 0, len(profs))
	for _, p := range profs {
		out = append(out, ProfessionalResponse{
			ID:        p.ID.String(),
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
		})
	}
	return &ListResponse{Professionals: out}
}
