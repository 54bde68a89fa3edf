package update_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador de profissional inválido"
	msgInvalidDate        = "data inválida, esperado o formato YYYY-MM-DD"
	msgInvalidTime        = "horário inválido, esperado o formato 24h HH:MM"
)

type UpdateScheduleRequest struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type ScheduleResponse struct {
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"`
	Times          []string `json:"times"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/professionals/{professionalId}/schedule
// Replaces the whole slot list for one day. The response carries the set
// the store confirmed.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil {
		h.logger.Warn("PUT /admin/schedule - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	confirmed, err := h.service.SaveSlots(r.Context(), id, req.Date, req.Times)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("PUT /admin/schedule - Invalid date %q: %v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, schedule.ErrInvalidTime):
			h.logger.Warn("PUT /admin/schedule - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			h.logger.Error("PUT /admin/schedule - Failed for professional=%s date=%s: %v", id, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule - Saved: professional=%s date=%s slots=%d", id, req.Date, len(confirmed))
	handlers.RespondJSON(w, http.StatusOK, &ScheduleResponse{
		ProfessionalID: id.String(),
		Date:           req.Date,
		Times:          confirmed,
	})
}
