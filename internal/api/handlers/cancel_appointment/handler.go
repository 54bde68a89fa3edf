package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/appointments"
)

const (
	msgInvalidID           = "identificador de agendamento inválido"
	msgAppointmentNotFound = "agendamento não encontrado"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/appointments/{appointmentId}
// Success means the appointment is gone; notification delivery is
// asynchronous and never turns this into an error.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/appointments - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /admin/appointments - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("DELETE /admin/appointments - Failed to cancel id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments - Cancelled: id=%s", id)
	handlers.RespondNoContent(w)
}
