package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/service/schedule"
)

const (
	msgInvalidID    = "identificador de profissional inválido"
	msgInvalidMonth = "ano ou mês inválido"
)

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

// Handle GET /api/v1/professionals/{professionalId}/calendar?year=2025&month=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil {
		h.logger.Warn("GET /professionals/calendar - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	year, yearErr := strconv.Atoi(r.URL.Query().Get("year"))
	month, monthErr := strconv.Atoi(r.URL.Query().Get("month"))
	if yearErr != nil || monthErr != nil || year < 1 {
		h.logger.Warn("GET /professionals/calendar - Invalid year/month: %q/%q",
			r.URL.Query().Get("year"), r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	overview, err := h.service.MonthOverview(r.Context(), id, year, month)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("GET /professionals/calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /professionals/calendar - Failed for professional=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromAvailability(id.String(), year, month, overview))
}
