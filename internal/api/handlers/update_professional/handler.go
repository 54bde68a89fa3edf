package update_professional

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/professionals"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidID            = "identificador de profissional inválido"
	msgNameRequired         = "o nome do profissional é obrigatório"
	msgProfessionalNotFound = "profissional não encontrado"
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

// Handle PUT /api/v1/admin/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil {
		h.logger.Warn("PUT /admin/professionals - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	prof, err := h.service.Update(r.Context(), id, req.Name, req.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("PUT /admin/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("PUT /admin/professionals - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
		default:
			h.logger.Error("PUT /admin/professionals - Failed to update professional id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/professionals - Professional updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(prof))
}
