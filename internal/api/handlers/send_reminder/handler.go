package send_reminder

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

type ReminderResponse struct {
	Queued bool `json:"queued"`
}

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

// Handle POST /api/v1/admin/appointments/{appointmentId}/reminder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("POST /admin/appointments/reminder - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.SendReminder(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /admin/appointments/reminder - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("POST /admin/appointments/reminder - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/appointments/reminder - Queued: id=%s", id)
	handlers.RespondJSON(w, http.StatusAccepted, &ReminderResponse{Queued: true})
}
