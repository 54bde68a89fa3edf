package create_professional

import (
	"errors"
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/professionals"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNameRequired       = "o nome do profissional é obrigatório"
)

type Handler struct {
	service ProfessionalsService
	logger  Logger
}

func NewHandler(service ProfessionalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	prof, err := h.service.Create(r.Context(), req.Name, req.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /admin/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)
		default:
			h.logger.Error("POST /admin/professionals - Failed to create professional: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/professionals - Professional created: id=%s", prof.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(prof))
}
