package get_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/schedule"
)

const (
	msgInvalidID   = "identificador de profissional inválido"
	msgInvalidDate = "data inválida, esperado o formato YYYY-MM-DD"
)

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

// Handle GET /api/v1/admin/professionals/{professionalId}/schedule?date=YYYY-MM-DD
// Returns the editable slot list: the stored set, or the default business
// hours for a day that was never saved.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil {
		h.logger.Warn("GET /admin/schedule - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	date := r.URL.Query().Get("date")
	times, err := h.service.EditableSlots(r.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("GET /admin/schedule - Invalid date %q: %v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /admin/schedule - Failed for professional=%s date=%s: %v", id, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ScheduleResponse{
		ProfessionalID: id.String(),
		Date:           date,
		Times:          times,
	})
}
