package delete_professional

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/professionals"
)

const (
	msgInvalidID            = "identificador de profissional inválido"
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

// Handle DELETE /api/v1/admin/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/professionals - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /admin/professionals - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
		default:
			h.logger.Error("DELETE /admin/professionals - Failed to delete professional id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/professionals - Professional deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
